// Package snapshot provides the in-memory cache of derived fund data
package snapshot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/karlseguin/ccache/v2"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/models"
)

const (
	metricsPrefix = "metrics:"
	pricesPrefix  = "prices:"
)

// Stats reports cache effectiveness
type Stats struct {
	Items  int   `json:"items"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// Store implements interfaces.SnapshotStore on a ccache LRU
type Store struct {
	cache  *ccache.Cache
	ttl    time.Duration
	logger *common.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// NewStore creates a store holding at most maxSize snapshots for ttl each
func NewStore(ttl time.Duration, maxSize int64, logger *common.Logger) *Store {
	if maxSize <= 0 {
		maxSize = 1000
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		cache: ccache.New(ccache.Configure().
			MaxSize(maxSize).
			ItemsToPrune(uint32(max(1, maxSize/10)))),
		ttl:    ttl,
		logger: logger,
	}
}

// FetchMetrics returns the cached metrics for fundID or loads and caches them
func (s *Store) FetchMetrics(ctx context.Context, fundID string, load func(ctx context.Context) (*models.FundMetrics, error)) (*models.FundMetrics, error) {
	v, err := s.fetch(ctx, metricsPrefix+fundID, func() (interface{}, error) {
		return load(ctx)
	})
	if err != nil {
		return nil, err
	}
	m, ok := v.(*models.FundMetrics)
	if !ok {
		return nil, fmt.Errorf("snapshot %s%s holds %T", metricsPrefix, fundID, v)
	}
	return m, nil
}

// FetchPrices returns the cached price history for fundID or loads and caches it
func (s *Store) FetchPrices(ctx context.Context, fundID string, load func(ctx context.Context) (*models.PriceHistory, error)) (*models.PriceHistory, error) {
	v, err := s.fetch(ctx, pricesPrefix+fundID, func() (interface{}, error) {
		return load(ctx)
	})
	if err != nil {
		return nil, err
	}
	h, ok := v.(*models.PriceHistory)
	if !ok {
		return nil, fmt.Errorf("snapshot %s%s holds %T", pricesPrefix, fundID, v)
	}
	return h, nil
}

func (s *Store) fetch(ctx context.Context, key string, load func() (interface{}, error)) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if item := s.cache.Get(key); item != nil && !item.Expired() {
		s.hits.Add(1)
		return item.Value(), nil
	}
	s.misses.Add(1)

	item, err := s.cache.Fetch(key, s.ttl, load)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("key", key).Dur("ttl", s.ttl).Msg("Snapshot cached")
	return item.Value(), nil
}

// Invalidate drops the metrics and price snapshots for one fund
func (s *Store) Invalidate(fundID string) {
	s.cache.Delete(metricsPrefix + fundID)
	s.cache.Delete(pricesPrefix + fundID)
}

// Purge drops every snapshot and returns how many were held
func (s *Store) Purge() int {
	n := s.cache.ItemCount()
	s.cache.Clear()
	s.logger.Info().Int("snapshots", n).Msg("Snapshots purged")
	return n
}

// Stats returns item count and hit/miss totals
func (s *Store) Stats() Stats {
	return Stats{
		Items:  s.cache.ItemCount(),
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
	}
}

// Close stops the cache's background worker
func (s *Store) Close() {
	s.cache.Stop()
}
