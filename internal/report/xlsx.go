package report

import (
	"construction-estimator-service/internal/domain"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	estimateSheet   = "Estimate"
	dimensionsSheet = "Dimensions"
)

// XLSXRenderer writes a workbook with the breakdown table and the input dimensions.
type XLSXRenderer struct{}

func (XLSXRenderer) Format() Format { return FormatXLSX }

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXRenderer) Render(est *domain.Estimate) ([]byte, error) {
	if err := checkEstimate(est); err != nil {
		return nil, fmt.Errorf("render xlsx report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", estimateSheet); err != nil {
		return nil, fmt.Errorf("render xlsx report: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(dimensionsSheet); err != nil {
		return nil, fmt.Errorf("render xlsx report: create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("render xlsx report: header style: %w", err)
	}

	// 0.00
	volumeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("render xlsx report: volume style: %w", err)
	}

	meta := [][]any{
		{"Estimate", est.ID},
		{"Source", est.Source},
		{"File", est.FileName},
		{"Date", est.CreatedAt.UTC().Format(time.DateOnly)},
	}
	row := 1
	for _, m := range meta {
		if err := setRow(f, estimateSheet, row, m); err != nil {
			return nil, fmt.Errorf("render xlsx report: %w", err)
		}
		row++
	}
	row++

	header := make([]any, len(breakdownHeader))
	for i, h := range breakdownHeader {
		header[i] = h
	}
	if err := setRow(f, estimateSheet, row, header); err != nil {
		return nil, fmt.Errorf("render xlsx report: %w", err)
	}
	if err := styleRow(f, estimateSheet, row, len(header), headerStyle); err != nil {
		return nil, fmt.Errorf("render xlsx report: %w", err)
	}
	row++

	first := row
	for _, r := range breakdownRows(est.Breakdown) {
		values := []any{r.Element, r.Concrete, r.Cement, r.Sand, r.Aggregate, r.Steel, r.Bricks}
		if err := setRow(f, estimateSheet, row, values); err != nil {
			return nil, fmt.Errorf("render xlsx report: %w", err)
		}
		row++
	}
	if err := f.SetCellStyle(estimateSheet, fmt.Sprintf("B%d", first), fmt.Sprintf("B%d", row-1), volumeStyle); err != nil {
		return nil, fmt.Errorf("render xlsx report: volume style: %w", err)
	}

	if err := f.SetColWidth(estimateSheet, "A", "A", 14); err != nil {
		return nil, fmt.Errorf("render xlsx report: column width: %w", err)
	}
	if err := f.SetColWidth(estimateSheet, "B", "G", 16); err != nil {
		return nil, fmt.Errorf("render xlsx report: column width: %w", err)
	}

	if err := setRow(f, dimensionsSheet, 1, []any{"Dimension", "Value", "Unit"}); err != nil {
		return nil, fmt.Errorf("render xlsx report: %w", err)
	}
	if err := styleRow(f, dimensionsSheet, 1, 3, headerStyle); err != nil {
		return nil, fmt.Errorf("render xlsx report: %w", err)
	}
	for i, d := range dimensionRows(est.Dimensions) {
		if err := setRow(f, dimensionsSheet, i+2, []any{d.Name, d.Value, d.Unit}); err != nil {
			return nil, fmt.Errorf("render xlsx report: %w", err)
		}
	}
	if err := f.SetColWidth(dimensionsSheet, "A", "A", 20); err != nil {
		return nil, fmt.Errorf("render xlsx report: column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx report: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set %s row %d: %w", sheet, row, err)
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, cols int, style int) error {
	from, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, from, to, style); err != nil {
		return fmt.Errorf("style %s row %d: %w", sheet, row, err)
	}
	return nil
}
