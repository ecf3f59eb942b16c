// Package service stores waste records and computes their emission on write.
package service

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/waste/domain"
	"carbon-footprint/backend/internal/waste/repository"
)

// Service is the waste record store.
type Service = activity.Service[*domain.Record]

// NewService returns a waste Service backed by repo.
func NewService(repo repository.Repository, opts ...activity.Option) *Service {
	return activity.NewService[*domain.Record](emission.CategoryWaste, repo, opts...)
}
