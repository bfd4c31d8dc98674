package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Time logs the duration of an operation when the returned func is deferred.
//
//	defer obs.Time(ctx, "estimates.repo.Save")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)
		log := zap.S().Named("obs")

		if errp != nil && *errp != nil {
			log.Warnw("operation failed", "req_id", reqID, "op", name, "dur", dur, "error", *errp)
			return
		}
		log.Debugw("operation completed", "req_id", reqID, "op", name, "dur", dur)
	}
}
