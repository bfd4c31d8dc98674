package ports

import (
	"construction-estimator-service/internal/domain"
	"context"
)

// Contract for turning an uploaded building model into dimensions.
type DimensionSource interface {
	// Extract building dimensions from the described file.
	Extract(ctx context.Context, file domain.UploadedFile) (domain.BuildingDimensions, error)
}
