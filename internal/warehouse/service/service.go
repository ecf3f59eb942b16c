// Package service stores warehouse records and computes their emission on write.
package service

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/warehouse/domain"
	"carbon-footprint/backend/internal/warehouse/repository"
)

// Service is the warehouse record store.
type Service = activity.Service[*domain.Record]

// NewService returns a warehouse Service backed by repo.
func NewService(repo repository.Repository, opts ...activity.Option) *Service {
	return activity.NewService[*domain.Record](emission.CategoryWarehouse, repo, opts...)
}
