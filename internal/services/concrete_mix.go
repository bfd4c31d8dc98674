package services

import (
	"construction-estimator-service/internal/domain"
	"fmt"
	"math"
)

// Empirical material constants.
const (
	// Dry ingredients occupy more volume than the compacted wet mix.
	DryVolumeFactor = 1.54

	CementDensity    = 1440.0 // kg/m³
	SandDensity      = 1600.0 // kg/m³
	AggregateDensity = 1450.0 // kg/m³
)

// ConcreteMix is the dry material mass needed for a volume of wet concrete.
type ConcreteMix struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
}

// SplitConcreteMix converts a wet concrete volume into cement, sand and aggregate masses.
//
// The wet volume is bulked to its dry volume, split by the ratio parts and converted to
// mass by density. Each mass is rounded up to the next whole kilogram.
func SplitConcreteMix(volume float64, ratio domain.MixRatio) (ConcreteMix, error) {
	if err := domain.ValidateLength("volume", volume); err != nil {
		return ConcreteMix{}, fmt.Errorf("split concrete mix: %w", err)
	}
	if err := ratio.Validate(); err != nil {
		return ConcreteMix{}, fmt.Errorf("split concrete mix: %w", err)
	}
	if len(ratio.Parts) != 3 {
		return ConcreteMix{}, fmt.Errorf(
			"split concrete mix: %w",
			&domain.ValidationError{Field: "ratio", Value: ratio.String(), Err: domain.ErrInvalidRatio},
		)
	}

	total := float64(ratio.Total())
	dryVolume := volume * DryVolumeFactor

	return ConcreteMix{
		Cement:    componentMass(dryVolume, ratio.Parts[0], total, CementDensity),
		Sand:      componentMass(dryVolume, ratio.Parts[1], total, SandDensity),
		Aggregate: componentMass(dryVolume, ratio.Parts[2], total, AggregateDensity),
	}, nil
}

// CementForConcrete returns the cement mass (kg) for a wet concrete volume (m³).
func CementForConcrete(volume float64, ratio string) (float64, error) {
	mix, err := splitConcreteMixString(volume, ratio)
	if err != nil {
		return 0, err
	}
	return mix.Cement, nil
}

// SandForConcrete returns the sand mass (kg) for a wet concrete volume (m³).
func SandForConcrete(volume float64, ratio string) (float64, error) {
	mix, err := splitConcreteMixString(volume, ratio)
	if err != nil {
		return 0, err
	}
	return mix.Sand, nil
}

// AggregateForConcrete returns the aggregate mass (kg) for a wet concrete volume (m³).
func AggregateForConcrete(volume float64, ratio string) (float64, error) {
	mix, err := splitConcreteMixString(volume, ratio)
	if err != nil {
		return 0, err
	}
	return mix.Aggregate, nil
}

func splitConcreteMixString(volume float64, ratio string) (ConcreteMix, error) {
	r, err := domain.ParseMixRatio(ratio)
	if err != nil {
		return ConcreteMix{}, fmt.Errorf("split concrete mix: %w", err)
	}
	return SplitConcreteMix(volume, r)
}

// componentMass keeps the operation order (volume × part ÷ total × density) stable
// so results are reproducible to the last bit.
func componentMass(volume float64, part int, total float64, density float64) float64 {
	componentVolume := (volume * float64(part)) / total
	return math.Ceil(componentVolume * density)
}

// roundVolume rounds a concrete volume to two decimals, half up.
func roundVolume(v float64) float64 {
	// The explicit conversion stops the compiler from fusing into an FMA.
	return math.Floor(float64(v*100)+0.5) / 100
}
