package services

import (
	"construction-estimator-service/internal/domain"
	"fmt"
	"math"
)

// Reinforcement density by structural element, kg of steel per m³ of concrete.
const (
	FoundationSteelRatio = 80.0
	ColumnSteelRatio     = 120.0
	BeamSteelRatio       = 100.0
	SlabSteelRatio       = 100.0
)

var (
	structuralMix = domain.MustParseMixRatio(domain.StructuralConcreteRatio)
	foundationMix = domain.MustParseMixRatio(domain.FoundationConcreteRatio)
)

// SteelReinforcement returns the steel mass (kg) for a concrete volume, rounded up.
func SteelReinforcement(volume, kgPerM3 float64) (float64, error) {
	if err := domain.ValidateLength("volume", volume); err != nil {
		return 0, fmt.Errorf("calculate steel: %w", err)
	}
	if err := domain.ValidateLength("steel_ratio", kgPerM3); err != nil {
		return 0, fmt.Errorf("calculate steel: %w", err)
	}
	return math.Ceil(volume * kgPerM3), nil
}

// Foundation uses the leaner 1:3:6 mix.
func Foundation(length, width, depth float64) (domain.ElementMaterials, error) {
	m, err := element(length, width, depth, foundationMix, FoundationSteelRatio)
	if err != nil {
		return domain.ElementMaterials{}, fmt.Errorf("calculate foundation: %w", err)
	}
	return m, nil
}

// Column computes a single column.
func Column(length, width, height float64) (domain.ElementMaterials, error) {
	m, err := element(length, width, height, structuralMix, ColumnSteelRatio)
	if err != nil {
		return domain.ElementMaterials{}, fmt.Errorf("calculate column: %w", err)
	}
	return m, nil
}

// Beam computes a single beam.
func Beam(length, width, depth float64) (domain.ElementMaterials, error) {
	m, err := element(length, width, depth, structuralMix, BeamSteelRatio)
	if err != nil {
		return domain.ElementMaterials{}, fmt.Errorf("calculate beam: %w", err)
	}
	return m, nil
}

// Slab computes a reinforced concrete slab. thicknessMM is in millimeters.
func Slab(length, width, thicknessMM float64) (domain.ElementMaterials, error) {
	if err := domain.ValidateLength("slab_thickness", thicknessMM); err != nil {
		return domain.ElementMaterials{}, fmt.Errorf("calculate slab: %w", err)
	}

	m, err := element(length, width, thicknessMM/1000, structuralMix, SlabSteelRatio)
	if err != nil {
		return domain.ElementMaterials{}, fmt.Errorf("calculate slab: %w", err)
	}
	return m, nil
}

// element derives masses from the unrounded volume; only the reported
// concrete volume is rounded to two decimals.
func element(a, b, c float64, ratio domain.MixRatio, steelRatio float64) (domain.ElementMaterials, error) {
	for _, v := range []float64{a, b, c} {
		if err := domain.ValidateLength("dimension", v); err != nil {
			return domain.ElementMaterials{}, err
		}
	}

	volume := a * b * c

	mix, err := SplitConcreteMix(volume, ratio)
	if err != nil {
		return domain.ElementMaterials{}, err
	}

	steel, err := SteelReinforcement(volume, steelRatio)
	if err != nil {
		return domain.ElementMaterials{}, err
	}

	return domain.ElementMaterials{
		Concrete:  roundVolume(volume),
		Cement:    mix.Cement,
		Sand:      mix.Sand,
		Aggregate: mix.Aggregate,
		Steel:     steel,
	}, nil
}
