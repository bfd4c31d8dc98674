package cache

import (
	"construction-estimator-service/internal/adapters/repositories"
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/db"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDims = domain.BuildingDimensions{
		FoundationLength: 10, FoundationWidth: 8, FoundationDepth: 0.5,
		WallLength: 1, WallHeight: 1, WallThickness: 0.23,
	}
	testBreakdown = &domain.EstimateBreakdown{
		Foundation: domain.ElementMaterials{Concrete: 40, Cement: 8871, Sand: 29568, Aggregate: 53592, Steel: 3200},
		Bricks:     150,
		Mortar:     domain.MortarMaterials{Cement: 34, Sand: 227},
		Total:      domain.MaterialCalculation{Concrete: 40, Cement: 8905, Sand: 29795, Aggregate: 53592, Steel: 3200, Bricks: 150},
	}
)

func TestKeyForIsStable(t *testing.T) {
	k1, err := KeyFor(testDims)
	require.NoError(t, err)
	k2, err := KeyFor(testDims)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Contains(t, k1, keyPrefix)

	other := testDims
	other.WallLength = 2
	k3, err := KeyFor(other)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)
}

func TestRedisEstimateCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	c := NewRedisEstimateCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, testDims)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, testDims, testBreakdown))

	got, ok, err := c.Get(ctx, testDims)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testBreakdown, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, testDims)
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after TTL")
}

func TestRedisEstimateCache_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	c := NewRedisEstimateCache(client, time.Minute)
	_, _, err := c.Get(context.Background(), testDims)
	require.Error(t, err)
}

func TestSQLEstimateCache(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, repositories.Migrate(ctx, conn, db.DriverSQLite))

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewSQLEstimateCache(conn, db.DriverSQLite, time.Hour)
	c.Now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, testDims)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, testDims, testBreakdown))
	// Upsert must not fail on an existing key.
	require.NoError(t, c.Set(ctx, testDims, testBreakdown))

	got, ok, err := c.Get(ctx, testDims)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testBreakdown, got)

	now = now.Add(2 * time.Hour)
	_, ok, err = c.Get(ctx, testDims)
	require.NoError(t, err)
	assert.False(t, ok, "expired rows are ignored")
}
