package repositories

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

// Fixed-width UTC layout so created_at sorts lexically in both SQLite and Postgres.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// SQL-backed implementation of the EstimateRepository port.
// Driver selects the placeholder style ("sqlite" or "pgx").
type SQLEstimateRepository struct {
	DB     *sql.DB
	Driver string
}

func NewSQLEstimateRepository(conn *sql.DB, driver string) *SQLEstimateRepository {
	return &SQLEstimateRepository{DB: conn, Driver: driver}
}

// Insert a new estimate row.
func (s *SQLEstimateRepository) SaveEstimate(ctx context.Context, est *domain.Estimate) (err error) {
	defer obs.Time(ctx, "estimates.repo.Save")(&err)

	if s.DB == nil {
		return errors.New("save estimate: DB is nil")
	}
	if est == nil || est.ID == "" {
		return errors.New("save estimate: estimate id must not be empty")
	}

	dims, err := json.Marshal(est.Dimensions)
	if err != nil {
		return fmt.Errorf("save estimate: encode dimensions: %w", err)
	}
	breakdown, err := json.Marshal(est.Breakdown)
	if err != nil {
		return fmt.Errorf("save estimate: encode breakdown: %w", err)
	}

	query := `
	INSERT INTO estimates (
		id,
		source,
		file_name,
		dimensions,
		breakdown,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, db.Rebind(s.Driver, query),
		est.ID,
		est.Source,
		est.FileName,
		string(dims),
		string(breakdown),
		est.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("save estimate: insert id=%s: %w", est.ID, err)
	}

	return nil
}

// Return one estimate by id.
func (s *SQLEstimateRepository) GetEstimate(ctx context.Context, id string) (_ *domain.Estimate, err error) {
	defer obs.Time(ctx, "estimates.repo.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("get estimate: DB is nil")
	}

	query := `
	SELECT
		id,
		source,
		file_name,
		dimensions,
		breakdown,
		created_at
	FROM estimates
	WHERE id = ?;
	`
	row := s.DB.QueryRowContext(ctx, db.Rebind(s.Driver, query), id)

	est, err := scanEstimate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get estimate: id=%s: %w", id, domain.ErrEstimateNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get estimate: id=%s: %w", id, err)
	}

	return est, nil
}

// Return the most recent estimates, newest first.
func (s *SQLEstimateRepository) ListEstimates(ctx context.Context, limit int) (_ []*domain.Estimate, err error) {
	defer obs.Time(ctx, "estimates.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("list estimates: DB is nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("list estimates: limit must be positive, got %d", limit)
	}

	query := `
	SELECT
		id,
		source,
		file_name,
		dimensions,
		breakdown,
		created_at
	FROM estimates
	ORDER BY created_at DESC, id
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, db.Rebind(s.Driver, query), limit)
	if err != nil {
		return nil, fmt.Errorf("list estimates: query estimates table: %w", err)
	}
	defer rows.Close()

	estimates := make([]*domain.Estimate, 0, limit)
	for rows.Next() {
		est, err := scanEstimate(rows)
		if err != nil {
			return nil, fmt.Errorf("list estimates: %w", err)
		}
		estimates = append(estimates, est)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list estimates: row iteration: %w", err)
	}

	return estimates, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEstimate(row rowScanner) (*domain.Estimate, error) {
	var est domain.Estimate
	var dims, breakdown, ts string
	if err := row.Scan(&est.ID, &est.Source, &est.FileName, &dims, &breakdown, &ts); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(dims), &est.Dimensions); err != nil {
		return nil, fmt.Errorf("decode dimensions of %s: %w", est.ID, err)
	}
	if err := json.Unmarshal([]byte(breakdown), &est.Breakdown); err != nil {
		return nil, fmt.Errorf("decode breakdown of %s: %w", est.ID, err)
	}

	createdAt, err := time.Parse(createdAtLayout, ts)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of %s: %w", est.ID, err)
	}
	est.CreatedAt = createdAt

	return &est, nil
}
