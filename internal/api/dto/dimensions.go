package dto

import "construction-estimator-service/internal/domain"

// DimensionsRequest mirrors domain.BuildingDimensions. Counts arrive as JSON
// numbers and are checked for integrality before conversion.
type DimensionsRequest struct {
	FoundationLength float64 `json:"foundation_length" validate:"gte=0"`
	FoundationWidth  float64 `json:"foundation_width" validate:"gte=0"`
	FoundationDepth  float64 `json:"foundation_depth" validate:"gte=0"`

	ColumnCount  float64 `json:"column_count" validate:"gte=0,lte=1000000,whole"`
	ColumnLength float64 `json:"column_length" validate:"gte=0"`
	ColumnWidth  float64 `json:"column_width" validate:"gte=0"`
	ColumnHeight float64 `json:"column_height" validate:"gte=0"`

	BeamCount  float64 `json:"beam_count" validate:"gte=0,lte=1000000,whole"`
	BeamLength float64 `json:"beam_length" validate:"gte=0"`
	BeamWidth  float64 `json:"beam_width" validate:"gte=0"`
	BeamDepth  float64 `json:"beam_depth" validate:"gte=0"`

	WallLength    float64 `json:"wall_length" validate:"gte=0"`
	WallHeight    float64 `json:"wall_height" validate:"gte=0"`
	WallThickness float64 `json:"wall_thickness" validate:"gte=0"`

	SlabLength    float64 `json:"slab_length" validate:"gte=0"`
	SlabWidth     float64 `json:"slab_width" validate:"gte=0"`
	SlabThickness float64 `json:"slab_thickness" validate:"gte=0"`
}

func (d DimensionsRequest) ToDomain() domain.BuildingDimensions {
	return domain.BuildingDimensions{
		FoundationLength: d.FoundationLength,
		FoundationWidth:  d.FoundationWidth,
		FoundationDepth:  d.FoundationDepth,
		ColumnCount:      int(d.ColumnCount),
		ColumnLength:     d.ColumnLength,
		ColumnWidth:      d.ColumnWidth,
		ColumnHeight:     d.ColumnHeight,
		BeamCount:        int(d.BeamCount),
		BeamLength:       d.BeamLength,
		BeamWidth:        d.BeamWidth,
		BeamDepth:        d.BeamDepth,
		WallLength:       d.WallLength,
		WallHeight:       d.WallHeight,
		WallThickness:    d.WallThickness,
		SlabLength:       d.SlabLength,
		SlabWidth:        d.SlabWidth,
		SlabThickness:    d.SlabThickness,
	}
}
