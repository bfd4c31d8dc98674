package main

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/services"
	"encoding/json"
	"fmt"
	"os"
)

type seedProject struct {
	FileName   string                    `json:"file_name"`
	Dimensions domain.BuildingDimensions `json:"dimensions"`
}

// loadSeed reads demo projects from a JSON array file.
func loadSeed(path string) ([]services.EstimateRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	var projects []seedProject
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("load seed: decode %s: %w", path, err)
	}

	reqs := make([]services.EstimateRequest, 0, len(projects))
	for i, p := range projects {
		if err := p.Dimensions.Validate(); err != nil {
			return nil, fmt.Errorf("load seed: project %d (%s): %w", i, p.FileName, err)
		}
		reqs = append(reqs, services.EstimateRequest{
			Source:     domain.SourceSeed,
			FileName:   p.FileName,
			Dimensions: p.Dimensions,
		})
	}
	return reqs, nil
}
