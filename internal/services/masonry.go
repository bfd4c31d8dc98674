package services

import (
	"construction-estimator-service/internal/domain"
	"fmt"
	"math"
)

const (
	// Standard brick including its mortar joint: 0.19 x 0.09 x 0.09 m.
	BrickVolume = 0.19 * 0.09 * 0.09

	// Joint mortar per laid brick, m³.
	MortarVolumePerBrick = 0.0011
)

// Bricks returns the number of bricks needed for a wall, rounded up.
func Bricks(length, height, thickness float64) (int, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"wall_length", length}, {"wall_height", height}, {"wall_thickness", thickness}} {
		if err := domain.ValidateLength(f.name, f.v); err != nil {
			return 0, fmt.Errorf("calculate bricks: %w", err)
		}
	}

	wallVolume := length * height * thickness
	n := math.Ceil(wallVolume / BrickVolume)
	if n >= float64(math.MaxInt) {
		return 0, fmt.Errorf("calculate bricks: %w",
			&domain.ValidationError{Field: "wall_volume", Value: wallVolume, Err: domain.ErrInvalidDimension})
	}
	return int(n), nil
}

// MortarForBrickwork returns the cement and sand needed to lay brickCount bricks.
// The ratio is cement:sand, e.g. "1:6".
func MortarForBrickwork(brickCount int, ratio string) (domain.MortarMaterials, error) {
	if err := domain.ValidateCount("bricks", brickCount); err != nil {
		return domain.MortarMaterials{}, fmt.Errorf("calculate mortar: %w", err)
	}

	r, err := parseBinderRatio(ratio)
	if err != nil {
		return domain.MortarMaterials{}, fmt.Errorf("calculate mortar: %w", err)
	}

	volume := float64(brickCount) * MortarVolumePerBrick
	cement, sand := splitBinder(volume, r)

	return domain.MortarMaterials{Cement: cement, Sand: sand}, nil
}

// Plaster returns the cement and sand needed to plaster an area (m²) at a thickness (mm).
func Plaster(area, thicknessMM float64, ratio string) (domain.PlasterMaterials, error) {
	if err := domain.ValidateLength("area", area); err != nil {
		return domain.PlasterMaterials{}, fmt.Errorf("calculate plaster: %w", err)
	}
	if err := domain.ValidateLength("thickness", thicknessMM); err != nil {
		return domain.PlasterMaterials{}, fmt.Errorf("calculate plaster: %w", err)
	}

	r, err := parseBinderRatio(ratio)
	if err != nil {
		return domain.PlasterMaterials{}, fmt.Errorf("calculate plaster: %w", err)
	}

	volume := area * (thicknessMM / 1000)
	cement, sand := splitBinder(volume, r)

	return domain.PlasterMaterials{Cement: cement, Sand: sand}, nil
}

// parseBinderRatio accepts cement:sand ratios only.
func parseBinderRatio(ratio string) (domain.MixRatio, error) {
	r, err := domain.ParseMixRatio(ratio)
	if err != nil {
		return domain.MixRatio{}, err
	}
	if len(r.Parts) != 2 {
		return domain.MixRatio{}, &domain.ValidationError{Field: "ratio", Value: ratio, Err: domain.ErrInvalidRatio}
	}
	return r, nil
}

// Mortar and plaster volumes are already dry; no bulking factor applies.
func splitBinder(volume float64, r domain.MixRatio) (cement, sand float64) {
	total := float64(r.Total())
	cement = componentMass(volume, r.Parts[0], total, CementDensity)
	sand = componentMass(volume, r.Parts[1], total, SandDensity)
	return cement, sand
}
