package ports

import (
	"construction-estimator-service/internal/domain"
	"context"
)

// Cache of computed breakdowns keyed by the input dimensions.
type EstimateCache interface {
	// Return the cached breakdown and true on a hit.
	Get(ctx context.Context, dims domain.BuildingDimensions) (*domain.EstimateBreakdown, bool, error)
	// Store a breakdown for the given dimensions.
	Set(ctx context.Context, dims domain.BuildingDimensions, b *domain.EstimateBreakdown) error
}
