package api

import (
	"construction-estimator-service/internal/api/handlers"
	"construction-estimator-service/internal/api/validator"
	"construction-estimator-service/internal/platform/metrics"
	"construction-estimator-service/internal/services"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Estimator      *services.Estimator
	AllowedOrigins []string
	MaxUploadBytes int64
	// Optional readiness probe, usually the database ping.
	Ping func(ctx context.Context) error
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	v := validator.NewValidator(validator.NewEstimateValidationRules()...)

	healthHandler := &handlers.HealthHandler{Ping: cfg.Ping}
	estimateHandler := &handlers.EstimateHandler{
		Estimator:      cfg.Estimator,
		Validate:       v,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	calcHandler := &handlers.CalculatorHandler{Validate: v}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(
		requestIDMiddleware,
		loggingMiddleware,
		metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{"Content-Disposition", requestIDHeader},
			MaxAge:         300,
		}),
		middleware.Recoverer,
	)

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/estimates", func(r chi.Router) {
		r.Post("/", estimateHandler.Create)
		r.Get("/", estimateHandler.List)
		r.Post("/batch", estimateHandler.CreateBatch)
		r.Post("/upload", estimateHandler.Upload)
		r.Get("/{id}", estimateHandler.Get)
		r.Get("/{id}/report", estimateHandler.Report)
	})

	r.Route("/calculators", func(r chi.Router) {
		r.Post("/concrete", calcHandler.Concrete)
		r.Post("/bricks", calcHandler.Bricks)
		r.Post("/steel", calcHandler.Steel)
		r.Post("/plaster", calcHandler.Plaster)
	})

	return r
}
