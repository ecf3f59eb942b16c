// Package service stores energy records and computes their emission on write.
package service

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/energy/domain"
	"carbon-footprint/backend/internal/energy/repository"
)

// Service is the energy record store.
type Service = activity.Service[*domain.Record]

// NewService returns an energy Service backed by repo.
func NewService(repo repository.Repository, opts ...activity.Option) *Service {
	return activity.NewService[*domain.Record](emission.CategoryEnergy, repo, opts...)
}
