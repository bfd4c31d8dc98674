package services

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/metrics"
	"construction-estimator-service/internal/platform/obs"
	"construction-estimator-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EstimateRequest struct {
	Source     string
	FileName   string
	Dimensions domain.BuildingDimensions
}

// Estimator computes material estimates and records them.
// Cache and Source are optional: a nil cache disables caching and a nil
// source rejects uploads.
type Estimator struct {
	repo   ports.EstimateRepository
	cache  ports.EstimateCache
	source ports.DimensionSource
	now    func() time.Time
	newID  func() string
}

type EstimatorOption func(*Estimator)

func WithCache(c ports.EstimateCache) EstimatorOption {
	return func(e *Estimator) {
		e.cache = c
	}
}

func WithDimensionSource(s ports.DimensionSource) EstimatorOption {
	return func(e *Estimator) {
		e.source = s
	}
}

// WithClock replaces time.Now and the uuid generator; tests use it for stable output.
func WithClock(now func() time.Time, newID func() string) EstimatorOption {
	return func(e *Estimator) {
		if now != nil {
			e.now = now
		}
		if newID != nil {
			e.newID = newID
		}
	}
}

func NewEstimator(repo ports.EstimateRepository, opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EstimateProject computes the breakdown for a building, stores it and returns the saved estimate.
func (e *Estimator) EstimateProject(ctx context.Context, req EstimateRequest) (_ *domain.Estimate, err error) {
	defer obs.Time(ctx, "services.EstimateProject")(&err)

	if e.repo == nil {
		return nil, errors.New("estimate project: repository is nil")
	}
	if err := req.Dimensions.Validate(); err != nil {
		return nil, fmt.Errorf("estimate project: %w", err)
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = domain.SourceManual
	}

	breakdown, err := e.breakdown(ctx, req.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("estimate project: %w", err)
	}

	est := &domain.Estimate{
		ID:         e.newID(),
		Source:     source,
		FileName:   req.FileName,
		Dimensions: req.Dimensions,
		Breakdown:  breakdown,
		CreatedAt:  e.now().UTC(),
	}

	if err := e.repo.SaveEstimate(ctx, est); err != nil {
		return nil, fmt.Errorf("estimate project: %w", err)
	}

	metrics.IncreaseEstimatesTotal(source)
	return est, nil
}

// EstimateUpload extracts dimensions from an uploaded model and estimates them.
func (e *Estimator) EstimateUpload(ctx context.Context, file domain.UploadedFile) (*domain.Estimate, error) {
	if e.source == nil {
		return nil, errors.New("estimate upload: no dimension source configured")
	}

	dims, err := e.source.Extract(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("estimate upload: file=%q: %w", file.Name, err)
	}

	est, err := e.EstimateProject(ctx, EstimateRequest{
		Source:     domain.SourceUpload,
		FileName:   file.Name,
		Dimensions: dims,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate upload: file=%q: %w", file.Name, err)
	}
	return est, nil
}

func (e *Estimator) GetEstimate(ctx context.Context, id string) (*domain.Estimate, error) {
	if e.repo == nil {
		return nil, errors.New("get estimate: repository is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("get estimate: %w", domain.ErrEstimateNotFound)
	}

	est, err := e.repo.GetEstimate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get estimate: %w", err)
	}
	return est, nil
}

func (e *Estimator) ListEstimates(ctx context.Context, limit int) ([]*domain.Estimate, error) {
	if e.repo == nil {
		return nil, errors.New("list estimates: repository is nil")
	}

	ests, err := e.repo.ListEstimates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	return ests, nil
}

// breakdown consults the cache before computing. Cache failures are logged and
// never fail the estimate.
func (e *Estimator) breakdown(ctx context.Context, dims domain.BuildingDimensions) (domain.EstimateBreakdown, error) {
	if e.cache != nil {
		cached, ok, err := e.cache.Get(ctx, dims)
		switch {
		case err != nil:
			metrics.IncreaseCacheLookups("error")
			zap.S().Named("estimator").Warnw("cache lookup failed", "req_id", obs.RequestID(ctx), "error", err)
		case ok && cached != nil:
			metrics.IncreaseCacheLookups("hit")
			return *cached, nil
		default:
			metrics.IncreaseCacheLookups("miss")
		}
	}

	b, err := CalculateBreakdown(dims)
	if err != nil {
		return domain.EstimateBreakdown{}, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, dims, &b); err != nil {
			zap.S().Named("estimator").Warnw("cache store failed", "req_id", obs.RequestID(ctx), "error", err)
		}
	}

	return b, nil
}
