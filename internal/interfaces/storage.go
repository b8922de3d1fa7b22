package interfaces

import (
	"context"

	"github.com/bobmcallan/greenvest/internal/models"
)

// SnapshotStore caches derived fund data in memory for a fixed TTL.
// Fetch methods return the cached value or call load and cache its result.
type SnapshotStore interface {
	FetchMetrics(ctx context.Context, fundID string, load func(ctx context.Context) (*models.FundMetrics, error)) (*models.FundMetrics, error)
	FetchPrices(ctx context.Context, fundID string, load func(ctx context.Context) (*models.PriceHistory, error)) (*models.PriceHistory, error)

	// Invalidate drops every snapshot for one fund
	Invalidate(fundID string)

	// Purge drops every snapshot and returns how many were held
	Purge() int

	// Close stops background eviction
	Close()
}
