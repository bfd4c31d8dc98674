package report

import (
	"construction-estimator-service/internal/domain"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// Bulk densities used to express sand and aggregate as loose volume.
const (
	cementBagKg      = 50.0
	sandDensity      = 1600.0
	aggregateDensity = 1450.0
)

var ErrUnknownFormat = errors.New("unknown report format")

// Renderer turns an estimate into a downloadable document.
type Renderer interface {
	Format() Format
	ContentType() string
	Render(est *domain.Estimate) ([]byte, error)
}

// ForFormat returns the renderer for a format name such as "txt" or "xlsx".
func ForFormat(name string) (Renderer, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatText, "text", "":
		return TextRenderer{}, nil
	case FormatCSV:
		return CSVRenderer{}, nil
	case FormatXLSX:
		return XLSXRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FileName returns the download name for a report generated on the given day.
func FileName(f Format, at time.Time) string {
	return fmt.Sprintf("BuildCalc_Report_%s.%s", at.Format(time.DateOnly), f)
}

// elementRow is one line of the breakdown table shared by the tabular renderers.
type elementRow struct {
	Element   string
	Concrete  float64
	Cement    float64
	Sand      float64
	Aggregate float64
	Steel     float64
	Bricks    int
}

var breakdownHeader = []string{
	"Element",
	"Concrete (m3)",
	"Cement (kg)",
	"Sand (kg)",
	"Aggregate (kg)",
	"Steel (kg)",
	"Bricks",
}

func breakdownRows(b domain.EstimateBreakdown) []elementRow {
	el := func(name string, m domain.ElementMaterials) elementRow {
		return elementRow{
			Element:   name,
			Concrete:  m.Concrete,
			Cement:    m.Cement,
			Sand:      m.Sand,
			Aggregate: m.Aggregate,
			Steel:     m.Steel,
		}
	}

	return []elementRow{
		el("Foundation", b.Foundation),
		el("Columns", b.Columns),
		el("Beams", b.Beams),
		el("Slab", b.Slab),
		{Element: "Brickwork", Cement: b.Mortar.Cement, Sand: b.Mortar.Sand, Bricks: b.Bricks},
		{
			Element:   "Total",
			Concrete:  b.Total.Concrete,
			Cement:    b.Total.Cement,
			Sand:      b.Total.Sand,
			Aggregate: b.Total.Aggregate,
			Steel:     b.Total.Steel,
			Bricks:    b.Total.Bricks,
		},
	}
}

type dimensionRow struct {
	Name  string
	Value float64
	Unit  string
}

func dimensionRows(d domain.BuildingDimensions) []dimensionRow {
	return []dimensionRow{
		{"foundation_length", d.FoundationLength, "m"},
		{"foundation_width", d.FoundationWidth, "m"},
		{"foundation_depth", d.FoundationDepth, "m"},
		{"column_count", float64(d.ColumnCount), ""},
		{"column_length", d.ColumnLength, "m"},
		{"column_width", d.ColumnWidth, "m"},
		{"column_height", d.ColumnHeight, "m"},
		{"beam_count", float64(d.BeamCount), ""},
		{"beam_length", d.BeamLength, "m"},
		{"beam_width", d.BeamWidth, "m"},
		{"beam_depth", d.BeamDepth, "m"},
		{"wall_length", d.WallLength, "m"},
		{"wall_height", d.WallHeight, "m"},
		{"wall_thickness", d.WallThickness, "m"},
		{"slab_length", d.SlabLength, "m"},
		{"slab_width", d.SlabWidth, "m"},
		{"slab_thickness", d.SlabThickness, "mm"},
	}
}

func checkEstimate(est *domain.Estimate) error {
	if est == nil {
		return errors.New("estimate must not be nil")
	}
	return nil
}
