package handlers

import (
	"construction-estimator-service/internal/api/dto"
	"construction-estimator-service/internal/api/validator"
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/report"
	"construction-estimator-service/internal/services"
	"net/http"
)

// CalculatorHandler exposes the individual material formulas.
type CalculatorHandler struct {
	Validate *validator.Validator
}

func (h *CalculatorHandler) Concrete(w http.ResponseWriter, r *http.Request) {
	var req dto.ConcreteRequest
	if !decodeJSON(w, r, &req, h.Validate) {
		return
	}

	ratio := req.Ratio
	if ratio == "" {
		ratio = domain.StructuralConcreteRatio
	}
	mr, err := domain.ParseMixRatio(ratio)
	if err != nil {
		writeServiceError(w, r, "concrete calculator", err)
		return
	}

	mix, err := services.SplitConcreteMix(req.Volume, mr)
	if err != nil {
		writeServiceError(w, r, "concrete calculator", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ConcreteResponse{
		Ratio:      ratio,
		Cement:     mix.Cement,
		CementBags: report.CementBags(mix.Cement),
		Sand:       mix.Sand,
		Aggregate:  mix.Aggregate,
	})
}

func (h *CalculatorHandler) Bricks(w http.ResponseWriter, r *http.Request) {
	var req dto.BricksRequest
	if !decodeJSON(w, r, &req, h.Validate) {
		return
	}

	ratio := req.MortarRatio
	if ratio == "" {
		ratio = domain.MortarRatio
	}

	bricks, err := services.Bricks(req.Length, req.Height, req.Thickness)
	if err != nil {
		writeServiceError(w, r, "bricks calculator", err)
		return
	}
	mortar, err := services.MortarForBrickwork(bricks, ratio)
	if err != nil {
		writeServiceError(w, r, "bricks calculator", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.BricksResponse{
		Bricks:       bricks,
		MortarRatio:  ratio,
		MortarCement: mortar.Cement,
		MortarSand:   mortar.Sand,
	})
}

func (h *CalculatorHandler) Steel(w http.ResponseWriter, r *http.Request) {
	var req dto.SteelRequest
	if !decodeJSON(w, r, &req, h.Validate) {
		return
	}

	steel, err := services.SteelReinforcement(req.Volume, req.KgPerM3)
	if err != nil {
		writeServiceError(w, r, "steel calculator", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SteelResponse{Steel: steel})
}

func (h *CalculatorHandler) Plaster(w http.ResponseWriter, r *http.Request) {
	var req dto.PlasterRequest
	if !decodeJSON(w, r, &req, h.Validate) {
		return
	}

	ratio := req.Ratio
	if ratio == "" {
		ratio = domain.PlasterRatio
	}

	p, err := services.Plaster(req.Area, req.ThicknessMM, ratio)
	if err != nil {
		writeServiceError(w, r, "plaster calculator", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlasterResponse{
		Ratio:      ratio,
		Cement:     p.Cement,
		CementBags: report.CementBags(p.Cement),
		Sand:       p.Sand,
	})
}
