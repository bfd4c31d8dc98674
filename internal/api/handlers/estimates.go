package handlers

import (
	"construction-estimator-service/internal/api/dto"
	"construction-estimator-service/internal/api/validator"
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/report"
	"construction-estimator-service/internal/services"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	// Default cap for multipart uploads when none is configured.
	DefaultMaxUploadBytes = 100 << 20
)

type EstimateHandler struct {
	Estimator      *services.Estimator
	Validate       *validator.Validator
	MaxUploadBytes int64
}

// Create estimates a building from dimensions in the request body.
func (h *EstimateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEstimateRequest
	if !decodeJSON(w, r, &req, h.Validate) {
		return
	}

	est, err := h.Estimator.EstimateProject(r.Context(), services.EstimateRequest{
		Source:     domain.SourceManual,
		FileName:   strings.TrimSpace(req.FileName),
		Dimensions: req.Dimensions.ToDomain(),
	})
	if err != nil {
		writeServiceError(w, r, "create estimate", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewEstimateResponse(est))
}

// CreateBatch estimates several buildings in one request.
func (h *EstimateHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchEstimateRequest
	if !decodeJSON(w, r, &req, h.Validate) {
		return
	}

	reqs := make([]services.EstimateRequest, 0, len(req.Estimates))
	for _, e := range req.Estimates {
		reqs = append(reqs, services.EstimateRequest{
			Source:     domain.SourceManual,
			FileName:   strings.TrimSpace(e.FileName),
			Dimensions: e.Dimensions.ToDomain(),
		})
	}

	ests, err := h.Estimator.EstimateBatch(r.Context(), reqs, services.DefaultBatchConcurrency)
	if err != nil {
		writeServiceError(w, r, "create estimate batch", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewListEstimatesResponse(ests))
}

// Upload accepts a building model as multipart field "file" and estimates
// the dimensions the configured source derives from it.
func (h *EstimateHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.MaxUploadBytes
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", limit))
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close()

	file := domain.UploadedFile{Name: header.Filename, Size: header.Size, Content: f}
	if !file.IsSupportedModel() {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("unsupported file type %q, expected one of %s", file.Extension(), strings.Join(domain.ModelExtensions, ", ")))
		return
	}

	est, err := h.Estimator.EstimateUpload(r.Context(), file)
	if err != nil {
		writeServiceError(w, r, "upload estimate", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewEstimateResponse(est))
}

// List returns the most recent estimates, newest first.
func (h *EstimateHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
			return
		}
		limit = n
	}

	ests, err := h.Estimator.ListEstimates(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "list estimates", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListEstimatesResponse(ests))
}

func (h *EstimateHandler) Get(w http.ResponseWriter, r *http.Request) {
	est, err := h.Estimator.GetEstimate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "get estimate", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewEstimateResponse(est))
}

// Report downloads an estimate as txt, csv, xlsx or json.
func (h *EstimateHandler) Report(w http.ResponseWriter, r *http.Request) {
	renderer, err := report.ForFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	est, err := h.Estimator.GetEstimate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "get estimate", err)
		return
	}

	body, err := renderer.Render(est)
	if err != nil {
		writeServiceError(w, r, "render report", err)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", report.FileName(renderer.Format(), est.CreatedAt)))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
