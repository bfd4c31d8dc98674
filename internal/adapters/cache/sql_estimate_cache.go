package cache

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/db"
	"construction-estimator-service/internal/platform/obs"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLEstimateCache is a SQL-backed breakdown cache, used when Redis is not configured.
// Expired rows are ignored on read and overwritten on the next Set.
type SQLEstimateCache struct {
	DB     *sql.DB
	Driver string
	TTL    time.Duration
	Now    func() time.Time
}

func NewSQLEstimateCache(conn *sql.DB, driver string, ttl time.Duration) *SQLEstimateCache {
	return &SQLEstimateCache{DB: conn, Driver: driver, TTL: ttl, Now: time.Now}
}

func (s *SQLEstimateCache) Get(
	ctx context.Context,
	dims domain.BuildingDimensions,
) (_ *domain.EstimateBreakdown, _ bool, err error) {
	defer obs.Time(ctx, "estimate.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("estimate cache: db is nil")
	}

	key, err := KeyFor(dims)
	if err != nil {
		return nil, false, err
	}

	q := `
	SELECT breakdown
	FROM estimate_cache
	WHERE cache_key = ?
		AND expires_at > ?;
	`

	var raw string
	err = s.DB.QueryRowContext(ctx, db.Rebind(s.Driver, q), key, s.now().Unix()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get estimate cache: query estimate_cache table: %w", err)
	}

	var b domain.EstimateBreakdown
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, false, fmt.Errorf("get estimate cache: decode %s: %w", key, err)
	}

	return &b, true, nil
}

func (s *SQLEstimateCache) Set(
	ctx context.Context,
	dims domain.BuildingDimensions,
	b *domain.EstimateBreakdown,
) (err error) {
	defer obs.Time(ctx, "estimate.cache.sql.Set")(&err)

	if s.DB == nil {
		return errors.New("estimate cache: db is nil")
	}
	if b == nil {
		return errors.New("set estimate cache: breakdown must not be nil")
	}

	key, err := KeyFor(dims)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("set estimate cache: encode breakdown: %w", err)
	}

	q := `
	INSERT INTO estimate_cache (cache_key, breakdown, expires_at)
	VALUES (?, ?, ?)
	ON CONFLICT (cache_key) DO UPDATE SET
		breakdown = excluded.breakdown,
		expires_at = excluded.expires_at;
	`

	expiresAt := s.now().Add(s.TTL).Unix()
	if _, err := s.DB.ExecContext(ctx, db.Rebind(s.Driver, q), key, string(raw), expiresAt); err != nil {
		return fmt.Errorf("set estimate cache: upsert %s: %w", key, err)
	}

	return nil
}

func (s *SQLEstimateCache) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
