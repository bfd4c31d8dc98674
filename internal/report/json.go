package report

import (
	"construction-estimator-service/internal/domain"
	"encoding/json"
	"fmt"
)

type JSONRenderer struct{}

func (JSONRenderer) Format() Format      { return FormatJSON }
func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) Render(est *domain.Estimate) ([]byte, error) {
	if err := checkEstimate(est); err != nil {
		return nil, fmt.Errorf("render json report: %w", err)
	}

	b, err := json.MarshalIndent(est, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json report: %w", err)
	}
	return append(b, '\n'), nil
}
