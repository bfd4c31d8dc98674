package report

import (
	"bytes"
	"construction-estimator-service/internal/domain"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// CSVRenderer writes the estimate as three sections: metadata, dimensions and the breakdown table.
type CSVRenderer struct{}

func (CSVRenderer) Format() Format      { return FormatCSV }
func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVRenderer) Render(est *domain.Estimate) ([]byte, error) {
	if err := checkEstimate(est); err != nil {
		return nil, fmt.Errorf("render csv report: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"estimate_id", est.ID},
		{"source", est.Source},
		{"file_name", est.FileName},
		{"created_at", est.CreatedAt.UTC().Format(time.RFC3339)},
		{},
		{"dimension", "value", "unit"},
	}
	for _, d := range dimensionRows(est.Dimensions) {
		records = append(records, []string{d.Name, num(d.Value), d.Unit})
	}

	records = append(records, []string{}, breakdownHeader)
	for _, r := range breakdownRows(est.Breakdown) {
		records = append(records, []string{
			r.Element,
			strconv.FormatFloat(r.Concrete, 'f', 2, 64),
			num(r.Cement),
			num(r.Sand),
			num(r.Aggregate),
			num(r.Steel),
			strconv.Itoa(r.Bricks),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("render csv report: %w", err)
	}

	return buf.Bytes(), nil
}
