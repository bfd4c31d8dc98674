package handlers

import (
	"construction-estimator-service/internal/api/validator"
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Upper bound for JSON request bodies.
const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case domain.IsValidation(err):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEstimateNotFound):
		writeError(w, r, http.StatusNotFound, "estimate not found")
	default:
		zap.S().Named("http").Errorw(op+" failed", "req_id", obs.RequestID(r.Context()), "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON object into v and validates it.
// On failure it writes the 400 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, validate *validator.Validator) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	if validate != nil {
		if err := validate.Struct(v); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return false
		}
	}
	return true
}
