package cli

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/report"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

var legalReportFormats = []string{
	string(report.FormatText),
	string(report.FormatCSV),
	string(report.FormatJSON),
	string(report.FormatXLSX),
}

func validateReportFormat(format, out string) error {
	r, err := report.ForFormat(format)
	if err != nil {
		return fmt.Errorf("format must be one of %s", strings.Join(legalReportFormats, ", "))
	}
	if r.Format() == report.FormatXLSX && out == "" {
		return fmt.Errorf("xlsx output requires --out")
	}
	return nil
}

// readDimensions loads BuildingDimensions from a JSON file, or stdin when path is "-".
func readDimensions(path string, stdin io.Reader) (domain.BuildingDimensions, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.BuildingDimensions{}, fmt.Errorf("reading dimensions: %w", err)
	}

	var dims domain.BuildingDimensions
	if err := json.Unmarshal(raw, &dims); err != nil {
		return domain.BuildingDimensions{}, fmt.Errorf("parsing dimensions %s: %w", path, err)
	}
	return dims, nil
}

// writeReport renders est and writes it to out, or to w when out is empty.
func writeReport(w io.Writer, est *domain.Estimate, format, out string) error {
	r, err := report.ForFormat(format)
	if err != nil {
		return err
	}

	body, err := r.Render(est)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = w.Write(body)
		return err
	}
	if err := os.WriteFile(out, body, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	_, err = fmt.Fprintf(w, "Report written to %s (estimate %s)\n", out, est.ID)
	return err
}
