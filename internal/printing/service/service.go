// Package service stores printing records and computes their emission on write.
package service

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/printing/domain"
	"carbon-footprint/backend/internal/printing/repository"
)

// Service is the printing record store.
type Service = activity.Service[*domain.Record]

// NewService returns a printing Service backed by repo.
func NewService(repo repository.Repository, opts ...activity.Option) *Service {
	return activity.NewService[*domain.Record](emission.CategoryPrinting, repo, opts...)
}
