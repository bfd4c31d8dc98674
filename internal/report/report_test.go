package report

import (
	"bytes"
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/services"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleEstimate(t *testing.T) *domain.Estimate {
	t.Helper()

	dims := domain.BuildingDimensions{
		FoundationLength: 10, FoundationWidth: 8, FoundationDepth: 0.5,
		ColumnCount: 6, ColumnLength: 0.3, ColumnWidth: 0.3, ColumnHeight: 3,
		BeamCount: 8, BeamLength: 4, BeamWidth: 0.25, BeamDepth: 0.4,
		WallLength: 24, WallHeight: 3, WallThickness: 0.23,
		SlabLength: 10, SlabWidth: 8, SlabThickness: 150,
	}
	b, err := services.CalculateBreakdown(dims)
	require.NoError(t, err)

	return &domain.Estimate{
		ID:         "est-1",
		Source:     domain.SourceUpload,
		FileName:   "house.skp",
		Dimensions: dims,
		Breakdown:  b,
		CreatedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Format
	}{
		{"txt", FormatText},
		{"", FormatText},
		{"text", FormatText},
		{"CSV", FormatCSV},
		{" xlsx ", FormatXLSX},
		{"json", FormatJSON},
	}
	for _, tc := range tests {
		r, err := ForFormat(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, r.Format(), tc.name)
		assert.NotEmpty(t, r.ContentType())
	}

	_, err := ForFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "BuildCalc_Report_2026-03-14.txt", FileName(FormatText, at))
	assert.Equal(t, "BuildCalc_Report_2026-03-14.xlsx", FileName(FormatXLSX, at))
}

func TestCementBags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CementBags(0))
	assert.Equal(t, 1, CementBags(50))
	assert.Equal(t, 2, CementBags(50.5))
	assert.Equal(t, 333, CementBags(16641))
}

func TestTextRenderer(t *testing.T) {
	t.Parallel()

	out, err := TextRenderer{}.Render(sampleEstimate(t))
	require.NoError(t, err)
	text := string(out)

	for _, line := range []string{
		"BuildCalc Pro - Material Calculation Report",
		"File: house.skp",
		"Date: 2026-03-14",
		"Foundation: 10.00m x 8.00m x 0.50m",
		"Columns: 6 columns (0.3m x 0.3m x 3m)",
		"Beams: 8 beams (4.00m x 0.25m x 0.4m)",
		"Walls: 24.00m length, 3m height, 0.23m thickness",
		"Slabs: 10.00m x 8.00m x 150mm",
		"Concrete: 56.82 m³",
		"Cement: 16641.00 kg (333 bags of 50kg)",
		"Sand: 57652.00 kg (36.03 m³)",
		"Aggregate/Gravel: 75062.00 kg (51.77 m³)",
		"Steel/Iron: 4918.00 kg",
		"Bricks: 10761 pieces",
	} {
		assert.Contains(t, text, line+"\n")
	}
	assert.True(t, strings.HasSuffix(text, "construction methods.\n"))
}

func TestTextRenderer_ManualEstimateHasNoFile(t *testing.T) {
	t.Parallel()

	est := sampleEstimate(t)
	est.FileName = ""

	out, err := TextRenderer{}.Render(est)
	require.NoError(t, err)
	assert.Contains(t, string(out), "File: -\n")
}

func TestCSVRenderer(t *testing.T) {
	t.Parallel()

	out, err := CSVRenderer{}.Render(sampleEstimate(t))
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	byKey := map[string][]string{}
	for _, rec := range records {
		byKey[rec[0]] = rec
	}

	assert.Equal(t, []string{"estimate_id", "est-1"}, byKey["estimate_id"])
	assert.Equal(t, []string{"slab_thickness", "150", "mm"}, byKey["slab_thickness"])
	assert.Equal(t, []string{"column_count", "6", ""}, byKey["column_count"])
	assert.Equal(t, breakdownHeader, byKey["Element"])
	assert.Equal(t, []string{"Total", "56.82", "16641", "57652", "75062", "4918", "10761"}, byKey["Total"])
	assert.Equal(t, []string{"Brickwork", "0.00", "2436", "16234", "0", "0", "10761"}, byKey["Brickwork"])
}

func TestXLSXRenderer(t *testing.T) {
	t.Parallel()

	out, err := XLSXRenderer{}.Render(sampleEstimate(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{estimateSheet, dimensionsSheet}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "est-1", cell(estimateSheet, "B1"))
	assert.Equal(t, "2026-03-14", cell(estimateSheet, "B4"))
	assert.Equal(t, "Element", cell(estimateSheet, "A6"))
	assert.Equal(t, "Foundation", cell(estimateSheet, "A7"))
	assert.Equal(t, "8871", cell(estimateSheet, "C7"))
	assert.Equal(t, "Total", cell(estimateSheet, "A12"))
	assert.Equal(t, "56.82", cell(estimateSheet, "B12"))
	assert.Equal(t, "10761", cell(estimateSheet, "G12"))

	assert.Equal(t, "foundation_length", cell(dimensionsSheet, "A2"))
	assert.Equal(t, "10", cell(dimensionsSheet, "B2"))
	assert.Equal(t, "mm", cell(dimensionsSheet, "C18"))
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	out, err := JSONRenderer{}.Render(sampleEstimate(t))
	require.NoError(t, err)

	var got domain.Estimate
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "est-1", got.ID)
	assert.Equal(t, 10761, got.Breakdown.Total.Bricks)
}

func TestRenderersRejectNil(t *testing.T) {
	t.Parallel()

	for _, r := range []Renderer{TextRenderer{}, CSVRenderer{}, XLSXRenderer{}, JSONRenderer{}} {
		_, err := r.Render(nil)
		assert.Error(t, err, string(r.Format()))
	}
}
