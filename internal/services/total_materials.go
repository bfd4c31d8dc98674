package services

import (
	"construction-estimator-service/internal/domain"
	"fmt"
)

// CalculateBreakdown computes every structural element of a building and sums them.
//
// A single column and a single beam are computed and rounded first, then scaled by
// their counts. Cement and sand totals include the brick mortar; aggregate and steel
// do not. The brick count comes from the wall alone.
func CalculateBreakdown(dims domain.BuildingDimensions) (domain.EstimateBreakdown, error) {
	if err := dims.Validate(); err != nil {
		return domain.EstimateBreakdown{}, fmt.Errorf("calculate breakdown: %w", err)
	}

	foundation, err := Foundation(dims.FoundationLength, dims.FoundationWidth, dims.FoundationDepth)
	if err != nil {
		return domain.EstimateBreakdown{}, fmt.Errorf("calculate breakdown: %w", err)
	}

	column, err := Column(dims.ColumnLength, dims.ColumnWidth, dims.ColumnHeight)
	if err != nil {
		return domain.EstimateBreakdown{}, fmt.Errorf("calculate breakdown: %w", err)
	}

	beam, err := Beam(dims.BeamLength, dims.BeamWidth, dims.BeamDepth)
	if err != nil {
		return domain.EstimateBreakdown{}, fmt.Errorf("calculate breakdown: %w", err)
	}

	slab, err := Slab(dims.SlabLength, dims.SlabWidth, dims.SlabThickness)
	if err != nil {
		return domain.EstimateBreakdown{}, fmt.Errorf("calculate breakdown: %w", err)
	}

	bricks, err := Bricks(dims.WallLength, dims.WallHeight, dims.WallThickness)
	if err != nil {
		return domain.EstimateBreakdown{}, fmt.Errorf("calculate breakdown: %w", err)
	}

	mortar, err := MortarForBrickwork(bricks, domain.MortarRatio)
	if err != nil {
		return domain.EstimateBreakdown{}, fmt.Errorf("calculate breakdown: %w", err)
	}

	columns := column.Scale(dims.ColumnCount)
	beams := beam.Scale(dims.BeamCount)

	total := domain.MaterialCalculation{
		Concrete:  foundation.Concrete + columns.Concrete + beams.Concrete + slab.Concrete,
		Cement:    foundation.Cement + columns.Cement + beams.Cement + slab.Cement + mortar.Cement,
		Sand:      foundation.Sand + columns.Sand + beams.Sand + slab.Sand + mortar.Sand,
		Aggregate: foundation.Aggregate + columns.Aggregate + beams.Aggregate + slab.Aggregate,
		Steel:     foundation.Steel + columns.Steel + beams.Steel + slab.Steel,
		Bricks:    bricks,
	}

	return domain.EstimateBreakdown{
		Foundation: foundation,
		Columns:    columns,
		Beams:      beams,
		Slab:       slab,
		Bricks:     bricks,
		Mortar:     mortar,
		Total:      total,
	}, nil
}

// CalculateTotalMaterials returns the building-wide material summary.
func CalculateTotalMaterials(dims domain.BuildingDimensions) (domain.MaterialCalculation, error) {
	b, err := CalculateBreakdown(dims)
	if err != nil {
		return domain.MaterialCalculation{}, err
	}
	return b.Total, nil
}
