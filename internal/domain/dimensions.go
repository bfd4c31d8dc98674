package domain

import (
	"io"
	"math"
	"path/filepath"
	"slices"
	"strings"
)

// BuildingDimensions is the geometric description of a building used for estimation.
// All lengths are in meters except SlabThickness, which is in millimeters.
// Columns and beams are uniform: one set of dimensions applies to every unit.
type BuildingDimensions struct {
	FoundationLength float64 `json:"foundation_length"`
	FoundationWidth  float64 `json:"foundation_width"`
	FoundationDepth  float64 `json:"foundation_depth"`

	ColumnCount  int     `json:"column_count"`
	ColumnLength float64 `json:"column_length"`
	ColumnWidth  float64 `json:"column_width"`
	ColumnHeight float64 `json:"column_height"`

	BeamCount  int     `json:"beam_count"`
	BeamLength float64 `json:"beam_length"`
	BeamWidth  float64 `json:"beam_width"`
	BeamDepth  float64 `json:"beam_depth"`

	WallLength    float64 `json:"wall_length"`
	WallHeight    float64 `json:"wall_height"`
	WallThickness float64 `json:"wall_thickness"`

	SlabLength    float64 `json:"slab_length"`
	SlabWidth     float64 `json:"slab_width"`
	SlabThickness float64 `json:"slab_thickness"`
}

// Validate checks that every dimension is finite and non-negative and that counts are non-negative.
// The first offending field is reported as a *ValidationError.
func (d BuildingDimensions) Validate() error {
	if d.ColumnCount < 0 {
		return &ValidationError{Field: "column_count", Value: d.ColumnCount, Err: ErrInvalidCount}
	}
	if d.BeamCount < 0 {
		return &ValidationError{Field: "beam_count", Value: d.BeamCount, Err: ErrInvalidCount}
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"foundation_length", d.FoundationLength},
		{"foundation_width", d.FoundationWidth},
		{"foundation_depth", d.FoundationDepth},
		{"column_length", d.ColumnLength},
		{"column_width", d.ColumnWidth},
		{"column_height", d.ColumnHeight},
		{"beam_length", d.BeamLength},
		{"beam_width", d.BeamWidth},
		{"beam_depth", d.BeamDepth},
		{"wall_length", d.WallLength},
		{"wall_height", d.WallHeight},
		{"wall_thickness", d.WallThickness},
		{"slab_length", d.SlabLength},
		{"slab_width", d.SlabWidth},
		{"slab_thickness", d.SlabThickness},
	}
	for _, f := range fields {
		if err := ValidateLength(f.name, f.value); err != nil {
			return err
		}
	}

	return nil
}

// ValidateLength rejects negative, NaN and infinite values.
func ValidateLength(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return &ValidationError{Field: field, Value: v, Err: ErrInvalidDimension}
	}
	return nil
}

// ValidateCount rejects negative counts.
func ValidateCount(field string, n int) error {
	if n < 0 {
		return &ValidationError{Field: field, Value: n, Err: ErrInvalidCount}
	}
	return nil
}

// UploadedFile is the metadata a DimensionSource needs about a building model file.
// Content is optional; sources that only inspect metadata ignore it.
type UploadedFile struct {
	Name    string
	Size    int64
	Content io.ReadSeeker
}

// ModelExtensions lists the building model formats accepted for upload.
var ModelExtensions = []string{"skp", "dwg", "dxf", "rvt", "ifc", "3ds"}

// Extension returns the lower-cased text after the last dot, or "" when there is none.
func (f UploadedFile) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
}

// IsSupportedModel reports whether the file has an accepted model extension.
func (f UploadedFile) IsSupportedModel() bool {
	return slices.Contains(ModelExtensions, f.Extension())
}
