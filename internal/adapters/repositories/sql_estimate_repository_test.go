package repositories

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/db"
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EstimateRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	conn *sql.DB
	repo *SQLEstimateRepository
}

func (s *EstimateRepositorySuite) SetupTest() {
	s.ctx = context.Background()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	s.Require().NoError(err)
	s.Require().NoError(Migrate(s.ctx, conn, db.DriverSQLite))

	s.conn = conn
	s.repo = NewSQLEstimateRepository(conn, db.DriverSQLite)
}

func (s *EstimateRepositorySuite) TearDownTest() {
	s.conn.Close()
}

func sampleEstimate(id string, createdAt time.Time) *domain.Estimate {
	return &domain.Estimate{
		ID:       id,
		Source:   domain.SourceUpload,
		FileName: "house.skp",
		Dimensions: domain.BuildingDimensions{
			FoundationLength: 10, FoundationWidth: 8, FoundationDepth: 0.5,
			ColumnCount: 6, ColumnLength: 0.3, ColumnWidth: 0.3, ColumnHeight: 3,
			SlabLength: 10, SlabWidth: 8, SlabThickness: 150,
		},
		Breakdown: domain.EstimateBreakdown{
			Foundation: domain.ElementMaterials{Concrete: 40, Cement: 8871, Sand: 29568, Aggregate: 53592, Steel: 3200},
			Bricks:     150,
			Total:      domain.MaterialCalculation{Concrete: 40, Cement: 8871, Bricks: 150},
		},
		CreatedAt: createdAt,
	}
}

func (s *EstimateRepositorySuite) TestSaveAndGet() {
	created := time.Date(2026, 1, 1, 8, 0, 0, 123, time.UTC)
	want := sampleEstimate("est-1", created)

	s.Require().NoError(s.repo.SaveEstimate(s.ctx, want))

	got, err := s.repo.GetEstimate(s.ctx, "est-1")
	s.Require().NoError(err)
	s.Equal(want.Source, got.Source)
	s.Equal(want.FileName, got.FileName)
	s.Equal(want.Dimensions, got.Dimensions)
	s.Equal(want.Breakdown, got.Breakdown)
	s.True(got.CreatedAt.Equal(created), "created_at = %v, want %v", got.CreatedAt, created)
}

func (s *EstimateRepositorySuite) TestGetMissing() {
	_, err := s.repo.GetEstimate(s.ctx, "nope")
	s.Require().ErrorIs(err, domain.ErrEstimateNotFound)
}

func (s *EstimateRepositorySuite) TestSaveDuplicateID() {
	est := sampleEstimate("dup", time.Now())
	s.Require().NoError(s.repo.SaveEstimate(s.ctx, est))
	s.Require().Error(s.repo.SaveEstimate(s.ctx, est))
}

func (s *EstimateRepositorySuite) TestListNewestFirst() {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		s.Require().NoError(s.repo.SaveEstimate(s.ctx, sampleEstimate(id, base.Add(time.Duration(i)*time.Hour))))
	}

	got, err := s.repo.ListEstimates(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("c", got[0].ID)
	s.Equal("b", got[1].ID)

	_, err = s.repo.ListEstimates(s.ctx, 0)
	s.Require().Error(err)
}

func (s *EstimateRepositorySuite) TestMigrateIsIdempotent() {
	s.Require().NoError(Migrate(s.ctx, s.conn, db.DriverSQLite))
}

func TestEstimateRepositorySuite(t *testing.T) {
	suite.Run(t, new(EstimateRepositorySuite))
}

func TestSQLEstimateRepository_PostgresPlaceholders(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewSQLEstimateRepository(conn, db.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "file_name", "dimensions", "breakdown", "created_at"}))

	_, err = repo.GetEstimate(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrEstimateNotFound)

	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1, $2, $3, $4, $5, $6)")).
		WithArgs("est-9", domain.SourceManual, "", sqlmock.AnyArg(), sqlmock.AnyArg(), "2026-02-03T04:05:06.000000000Z").
		WillReturnResult(sqlmock.NewResult(0, 1))

	est := sampleEstimate("est-9", time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC))
	est.Source = domain.SourceManual
	est.FileName = ""
	require.NoError(t, repo.SaveEstimate(context.Background(), est))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEstimateRepository_NilDB(t *testing.T) {
	repo := &SQLEstimateRepository{}
	ctx := context.Background()

	require.Error(t, repo.SaveEstimate(ctx, sampleEstimate("x", time.Now())))
	_, err := repo.GetEstimate(ctx, "x")
	require.Error(t, err)
	_, err = repo.ListEstimates(ctx, 1)
	require.Error(t, err)
}
