package services

import (
	"construction-estimator-service/internal/domain"
	"context"
	"errors"
	"fmt"
	"sync"
)

// Upper bound on concurrently running estimates in a batch.
const DefaultBatchConcurrency = 5

type batchResult struct {
	index int
	est   *domain.Estimate
	err   error
}

// EstimateBatch runs EstimateProject for every request with bounded concurrency.
// Results keep the request order. The first failure cancels the remaining work
// and is returned.
func (e *Estimator) EstimateBatch(ctx context.Context, reqs []EstimateRequest, concurrency int) ([]*domain.Estimate, error) {
	if len(reqs) == 0 {
		return []*domain.Estimate{}, nil
	}
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, concurrency)
	resultsCh := make(chan batchResult, len(reqs))
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req EstimateRequest) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				resultsCh <- batchResult{index: i, err: err}
				return
			}

			est, err := e.EstimateProject(ctx, req)
			if err != nil {
				resultsCh <- batchResult{index: i, err: fmt.Errorf("estimate batch: item %d: %w", i, err)}
				cancel()
				return
			}
			resultsCh <- batchResult{index: i, est: est}
		}(i, req)
	}

	wg.Wait()
	close(resultsCh)

	out := make([]*domain.Estimate, len(reqs))
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			// Prefer the real failure over the cancellations it caused.
			if firstErr == nil || (errors.Is(firstErr, context.Canceled) && !errors.Is(res.err, context.Canceled)) {
				firstErr = res.err
			}
			continue
		}
		out[res.index] = res.est
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
