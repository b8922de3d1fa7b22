package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/models"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s := NewStore(ttl, 100, common.NewSilentLogger())
	t.Cleanup(s.Close)
	return s
}

func TestStore_FetchMetricsCaches(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()
	loads := 0
	load := func(ctx context.Context) (*models.FundMetrics, error) {
		loads++
		return &models.FundMetrics{FundID: "wind-energy"}, nil
	}

	first, err := s.FetchMetrics(ctx, "wind-energy", load)
	require.NoError(t, err)
	second, err := s.FetchMetrics(ctx, "wind-energy", load)
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.Same(t, first, second)

	stats := s.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestStore_LoadErrorIsNotCached(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()
	calls := 0
	load := func(ctx context.Context) (*models.PriceHistory, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("feed down")
		}
		return &models.PriceHistory{FundID: "solar-power"}, nil
	}

	_, err := s.FetchPrices(ctx, "solar-power", load)
	require.Error(t, err)

	h, err := s.FetchPrices(ctx, "solar-power", load)
	require.NoError(t, err)
	assert.Equal(t, "solar-power", h.FundID)
	assert.Equal(t, 2, calls)
}

func TestStore_ExpiredSnapshotReloads(t *testing.T) {
	s := newTestStore(t, 20*time.Millisecond)
	ctx := context.Background()
	loads := 0
	load := func(ctx context.Context) (*models.FundMetrics, error) {
		loads++
		return &models.FundMetrics{FundID: "water-tech"}, nil
	}

	_, err := s.FetchMetrics(ctx, "water-tech", load)
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)
	_, err = s.FetchMetrics(ctx, "water-tech", load)
	require.NoError(t, err)

	assert.Equal(t, 2, loads)
}

func TestStore_InvalidateAndPurge(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()
	loads := 0
	metrics := func(id string) func(context.Context) (*models.FundMetrics, error) {
		return func(context.Context) (*models.FundMetrics, error) {
			loads++
			return &models.FundMetrics{FundID: id}, nil
		}
	}

	_, _ = s.FetchMetrics(ctx, "recycling", metrics("recycling"))
	_, _ = s.FetchMetrics(ctx, "clean-industry", metrics("clean-industry"))
	assert.Equal(t, 2, loads)

	s.Invalidate("recycling")
	_, _ = s.FetchMetrics(ctx, "recycling", metrics("recycling"))
	_, _ = s.FetchMetrics(ctx, "clean-industry", metrics("clean-industry"))
	assert.Equal(t, 3, loads)

	assert.Eventually(t, func() bool { return s.Stats().Items == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, s.Purge())
	assert.Equal(t, 0, s.Stats().Items)

	_, _ = s.FetchMetrics(ctx, "clean-industry", metrics("clean-industry"))
	assert.Equal(t, 4, loads)
}

func TestStore_CancelledContext(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.FetchMetrics(ctx, "wind-energy", func(context.Context) (*models.FundMetrics, error) {
		t.Fatal("load must not be called")
		return nil, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
