package domain

import "time"

// MaterialCalculation is the material summary for a whole building.
type MaterialCalculation struct {
	Concrete  float64 `json:"concrete"`  // m³
	Cement    float64 `json:"cement"`    // kg
	Sand      float64 `json:"sand"`      // kg
	Aggregate float64 `json:"aggregate"` // kg
	Steel     float64 `json:"steel"`     // kg
	Bricks    int     `json:"bricks"`
}

// ElementMaterials is the material requirement of one structural element
// (or a group of identical elements once scaled).
type ElementMaterials struct {
	Concrete  float64 `json:"concrete"`
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
	Steel     float64 `json:"steel"`
}

// Scale multiplies every quantity by count. Quantities are already rounded per unit.
func (e ElementMaterials) Scale(count int) ElementMaterials {
	n := float64(count)
	return ElementMaterials{
		Concrete:  e.Concrete * n,
		Cement:    e.Cement * n,
		Sand:      e.Sand * n,
		Aggregate: e.Aggregate * n,
		Steel:     e.Steel * n,
	}
}

// MortarMaterials is the binder needed to lay a brick wall.
type MortarMaterials struct {
	Cement float64 `json:"cement"`
	Sand   float64 `json:"sand"`
}

// PlasterMaterials is the binder needed to plaster a surface.
type PlasterMaterials struct {
	Cement float64 `json:"cement"`
	Sand   float64 `json:"sand"`
}

// EstimateBreakdown keeps the per-element figures next to the building total.
// Columns and Beams are already scaled by their counts.
type EstimateBreakdown struct {
	Foundation ElementMaterials    `json:"foundation"`
	Columns    ElementMaterials    `json:"columns"`
	Beams      ElementMaterials    `json:"beams"`
	Slab       ElementMaterials    `json:"slab"`
	Bricks     int                 `json:"bricks"`
	Mortar     MortarMaterials     `json:"mortar"`
	Total      MaterialCalculation `json:"total"`
}

// Estimate is a recorded estimation run.
type Estimate struct {
	ID         string             `json:"id"`
	Source     string             `json:"source"`
	FileName   string             `json:"file_name,omitempty"`
	Dimensions BuildingDimensions `json:"dimensions"`
	Breakdown  EstimateBreakdown  `json:"breakdown"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Estimate sources.
const (
	SourceManual = "manual"
	SourceUpload = "upload"
	SourceCLI    = "cli"
	SourceSeed   = "seed"
)
