package cadstub

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/obs"
	"context"
	"errors"
	"math"
	"strings"
	"time"
)

// profile is a base building whose plan dimensions and counts scale with file size.
type profile struct {
	// MiB multiplier used to derive the size factor.
	sizeWeight float64
	base       domain.BuildingDimensions
}

var (
	sketchupProfile = profile{
		sizeWeight: 0.5,
		base: domain.BuildingDimensions{
			FoundationLength: 10, FoundationWidth: 8, FoundationDepth: 0.5,
			ColumnCount: 6, ColumnLength: 0.3, ColumnWidth: 0.3, ColumnHeight: 3,
			BeamCount: 8, BeamLength: 4, BeamWidth: 0.25, BeamDepth: 0.4,
			WallLength: 24, WallHeight: 3, WallThickness: 0.23,
			SlabLength: 10, SlabWidth: 8, SlabThickness: 150,
		},
	}
	autocadProfile = profile{
		sizeWeight: 0.4,
		base: domain.BuildingDimensions{
			FoundationLength: 12, FoundationWidth: 9, FoundationDepth: 0.6,
			ColumnCount: 8, ColumnLength: 0.35, ColumnWidth: 0.35, ColumnHeight: 3.2,
			BeamCount: 10, BeamLength: 4.5, BeamWidth: 0.3, BeamDepth: 0.45,
			WallLength: 30, WallHeight: 3.2, WallThickness: 0.23,
			SlabLength: 12, SlabWidth: 9, SlabThickness: 180,
		},
	}
	revitProfile = profile{
		sizeWeight: 0.6,
		base: domain.BuildingDimensions{
			FoundationLength: 15, FoundationWidth: 12, FoundationDepth: 0.7,
			ColumnCount: 12, ColumnLength: 0.4, ColumnWidth: 0.4, ColumnHeight: 3.5,
			BeamCount: 14, BeamLength: 5, BeamWidth: 0.35, BeamDepth: 0.5,
			WallLength: 40, WallHeight: 3.5, WallThickness: 0.25,
			SlabLength: 15, SlabWidth: 12, SlabThickness: 200,
		},
	}
)

// DefaultDimensions is the building used for unrecognized file types.
var DefaultDimensions = sketchupProfile.base

// StubDimensionSource fabricates building dimensions from a file's extension and size.
// It does not read the file; it stands in for a real CAD parser behind ports.DimensionSource.
type StubDimensionSource struct {
	delay time.Duration
}

// Option configures a StubDimensionSource.
type Option func(*StubDimensionSource)

// WithDelay simulates parser processing time.
func WithDelay(d time.Duration) Option {
	return func(s *StubDimensionSource) {
		s.delay = d
	}
}

func NewStubDimensionSource(opts ...Option) *StubDimensionSource {
	s := &StubDimensionSource{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract returns dimensions for the file. Unknown extensions get DefaultDimensions unscaled.
func (s *StubDimensionSource) Extract(ctx context.Context, file domain.UploadedFile) (_ domain.BuildingDimensions, err error) {
	defer obs.Time(ctx, "cadstub.Extract")(&err)

	if strings.TrimSpace(file.Name) == "" {
		return domain.BuildingDimensions{}, errors.New("extract dimensions: file name must not be empty")
	}
	if file.Size < 0 {
		return domain.BuildingDimensions{}, errors.New("extract dimensions: file size must not be negative")
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return domain.BuildingDimensions{}, ctx.Err()
		case <-t.C:
		}
	}

	switch file.Extension() {
	case "skp":
		return sketchupProfile.scaled(file.Size), nil
	case "dwg", "dxf":
		return autocadProfile.scaled(file.Size), nil
	case "rvt":
		return revitProfile.scaled(file.Size), nil
	default:
		return DefaultDimensions, nil
	}
}

// Plan lengths and counts grow with the size factor; section sizes and heights do not.
func (p profile) scaled(size int64) domain.BuildingDimensions {
	f := math.Max(1, float64(size)/(1024*1024)*p.sizeWeight)
	b := p.base

	return domain.BuildingDimensions{
		FoundationLength: b.FoundationLength * f,
		FoundationWidth:  b.FoundationWidth * f,
		FoundationDepth:  b.FoundationDepth,

		ColumnCount:  int(math.Ceil(float64(b.ColumnCount) * f)),
		ColumnLength: b.ColumnLength,
		ColumnWidth:  b.ColumnWidth,
		ColumnHeight: b.ColumnHeight,

		BeamCount:  int(math.Ceil(float64(b.BeamCount) * f)),
		BeamLength: b.BeamLength * f,
		BeamWidth:  b.BeamWidth,
		BeamDepth:  b.BeamDepth,

		WallLength:    b.WallLength * f,
		WallHeight:    b.WallHeight,
		WallThickness: b.WallThickness,

		SlabLength:    b.SlabLength * f,
		SlabWidth:     b.SlabWidth * f,
		SlabThickness: b.SlabThickness,
	}
}
