package report

import (
	"construction-estimator-service/internal/domain"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TextRenderer writes the plain-text report offered for download.
type TextRenderer struct{}

func (TextRenderer) Format() Format      { return FormatText }
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (TextRenderer) Render(est *domain.Estimate) ([]byte, error) {
	if err := checkEstimate(est); err != nil {
		return nil, fmt.Errorf("render text report: %w", err)
	}

	d := est.Dimensions
	t := est.Breakdown.Total

	fileName := est.FileName
	if fileName == "" {
		fileName = "-"
	}

	var sb strings.Builder
	sb.WriteString("BuildCalc Pro - Material Calculation Report\n")
	sb.WriteString("===========================================\n\n")
	fmt.Fprintf(&sb, "File: %s\n", fileName)
	fmt.Fprintf(&sb, "Date: %s\n\n", est.CreatedAt.Format(time.DateOnly))

	sb.WriteString("Building Dimensions:\n")
	sb.WriteString("-----------------\n")
	fmt.Fprintf(&sb, "Foundation: %.2fm x %.2fm x %.2fm\n", d.FoundationLength, d.FoundationWidth, d.FoundationDepth)
	fmt.Fprintf(&sb, "Columns: %d columns (%sm x %sm x %sm)\n", d.ColumnCount, num(d.ColumnLength), num(d.ColumnWidth), num(d.ColumnHeight))
	fmt.Fprintf(&sb, "Beams: %d beams (%.2fm x %sm x %sm)\n", d.BeamCount, d.BeamLength, num(d.BeamWidth), num(d.BeamDepth))
	fmt.Fprintf(&sb, "Walls: %.2fm length, %sm height, %sm thickness\n", d.WallLength, num(d.WallHeight), num(d.WallThickness))
	fmt.Fprintf(&sb, "Slabs: %.2fm x %.2fm x %smm\n\n", d.SlabLength, d.SlabWidth, num(d.SlabThickness))

	sb.WriteString("Material Requirements:\n")
	sb.WriteString("---------------------\n")
	fmt.Fprintf(&sb, "Concrete: %.2f m³\n", t.Concrete)
	fmt.Fprintf(&sb, "Cement: %.2f kg (%d bags of 50kg)\n", t.Cement, CementBags(t.Cement))
	fmt.Fprintf(&sb, "Sand: %.2f kg (%.2f m³)\n", t.Sand, t.Sand/sandDensity)
	fmt.Fprintf(&sb, "Aggregate/Gravel: %.2f kg (%.2f m³)\n", t.Aggregate, t.Aggregate/aggregateDensity)
	fmt.Fprintf(&sb, "Steel/Iron: %.2f kg\n", t.Steel)
	fmt.Fprintf(&sb, "Bricks: %d pieces\n\n", t.Bricks)

	sb.WriteString("Note: These calculations are based on standard construction practices and formulas.\n")
	sb.WriteString("Actual requirements may vary based on specific site conditions and construction methods.\n")

	return []byte(sb.String()), nil
}

// CementBags returns the number of 50 kg bags needed for a cement mass.
func CementBags(cementKg float64) int {
	return int(math.Ceil(cementKg / cementBagKg))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
