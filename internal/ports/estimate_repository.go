package ports

import (
	"construction-estimator-service/internal/domain"
	"context"
)

// Port: a boundary for storing and retrieving Estimate records.
type EstimateRepository interface {
	// Persist a new estimate.
	SaveEstimate(ctx context.Context, est *domain.Estimate) error
	// Retrieve one estimate; returns domain.ErrEstimateNotFound when missing.
	GetEstimate(ctx context.Context, id string) (*domain.Estimate, error)
	// Retrieve the most recent estimates, newest first.
	ListEstimates(ctx context.Context, limit int) ([]*domain.Estimate, error)
}
