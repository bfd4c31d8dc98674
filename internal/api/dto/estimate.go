package dto

import (
	"construction-estimator-service/internal/domain"
	"time"
)

type CreateEstimateRequest struct {
	FileName   string            `json:"file_name" validate:"max=255"`
	Dimensions DimensionsRequest `json:"dimensions"`
}

type BatchEstimateRequest struct {
	Estimates []CreateEstimateRequest `json:"estimates" validate:"required,min=1,max=50,dive"`
}

type EstimateResponse struct {
	ID         string                     `json:"id"`
	Source     string                     `json:"source"`
	FileName   string                     `json:"file_name,omitempty"`
	CreatedAt  time.Time                  `json:"created_at"`
	Dimensions domain.BuildingDimensions  `json:"dimensions"`
	Breakdown  domain.EstimateBreakdown   `json:"breakdown"`
	Total      domain.MaterialCalculation `json:"total"`
}

type ListEstimatesResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
}

func NewEstimateResponse(est *domain.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:         est.ID,
		Source:     est.Source,
		FileName:   est.FileName,
		CreatedAt:  est.CreatedAt,
		Dimensions: est.Dimensions,
		Breakdown:  est.Breakdown,
		Total:      est.Breakdown.Total,
	}
}

func NewListEstimatesResponse(ests []*domain.Estimate) ListEstimatesResponse {
	res := ListEstimatesResponse{Estimates: make([]EstimateResponse, 0, len(ests))}
	for _, est := range ests {
		res.Estimates = append(res.Estimates, NewEstimateResponse(est))
	}
	return res
}
