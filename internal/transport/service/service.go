// Package service stores transport records and computes their emission on write.
package service

import (
	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/transport/domain"
	"carbon-footprint/backend/internal/transport/repository"
)

// Service is the transport record store.
type Service = activity.Service[*domain.Record]

// NewService returns a transport Service backed by repo.
func NewService(repo repository.Repository, opts ...activity.Option) *Service {
	return activity.NewService[*domain.Record](emission.CategoryTransport, repo, opts...)
}
