// Package service stores packaging records and computes their emission on write.
package service

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/packaging/domain"
	"carbon-footprint/backend/internal/packaging/repository"
)

// Service is the packaging record store.
type Service = activity.Service[*domain.Record]

// NewService returns a packaging Service backed by repo.
func NewService(repo repository.Repository, opts ...activity.Option) *Service {
	return activity.NewService[*domain.Record](emission.CategoryPackaging, repo, opts...)
}
