package cadstub

import (
	"construction-estimator-service/internal/domain"
	"context"
	"fmt"
)

// MockDimensionSource returns fixed dimensions per file name.
type MockDimensionSource struct {
	m map[string]domain.BuildingDimensions
}

func NewMockDimensionSource(byName map[string]domain.BuildingDimensions) *MockDimensionSource {
	return &MockDimensionSource{m: byName}
}

func (p *MockDimensionSource) Extract(ctx context.Context, file domain.UploadedFile) (domain.BuildingDimensions, error) {
	d, ok := p.m[file.Name]
	if !ok {
		return domain.BuildingDimensions{}, fmt.Errorf("missing dimensions for %q", file.Name)
	}

	return d, nil
}
