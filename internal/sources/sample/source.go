// Package sample provides the built-in fund catalogue, price history and
// observation feed. Observations are drawn once from a seeded generator, so a
// given seed always yields the same metrics.
package sample

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

// Source serves the sample catalogue, prices and observations
type Source struct {
	seed         uint64
	asOf         time.Time
	observations map[string]models.FundObservations
}

// New creates a sample source. Seed 0 seeds from the clock.
// The last close is dated asOf, earlier closes one calendar day apart.
func New(seed uint64, asOf time.Time) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	asOf = asOf.UTC().Truncate(24 * time.Hour)

	s := &Source{
		seed:         seed,
		asOf:         asOf,
		observations: make(map[string]models.FundObservations, len(funds)),
	}
	for _, f := range funds {
		s.observations[f.ID] = draw(seed, f.ID, asOf)
	}
	return s
}

// Name identifies the feed
func (s *Source) Name() string { return "sample" }

// ListFunds returns a copy of the catalogue
func (s *Source) ListFunds(ctx context.Context) ([]models.Fund, error) {
	out := make([]models.Fund, len(funds))
	copy(out, funds)
	return out, nil
}

// GetFund returns one catalogue entry
func (s *Source) GetFund(ctx context.Context, fundID string) (*models.Fund, error) {
	for _, f := range funds {
		if f.ID == fundID {
			fund := f
			return &fund, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", interfaces.ErrFundNotFound, fundID)
}

// GetPriceHistory returns the 30 sample closes
func (s *Source) GetPriceHistory(ctx context.Context, fundID string) (*models.PriceHistory, error) {
	series, ok := closes[fundID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrFundNotFound, fundID)
	}
	points := make([]models.PricePoint, len(series))
	start := s.asOf.AddDate(0, 0, -(len(series) - 1))
	for i, c := range series {
		points[i] = models.PricePoint{Date: start.AddDate(0, 0, i), Close: c}
	}
	return &models.PriceHistory{FundID: fundID, Source: s.Name(), Points: points}, nil
}

// GetObservations returns the drawn observations for a fund
func (s *Source) GetObservations(ctx context.Context, fundID string) (*models.FundObservations, error) {
	obs, ok := s.observations[fundID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrFundNotFound, fundID)
	}
	return &obs, nil
}

// draw generates one fund's observations from a generator keyed by seed and fund id,
// so the result does not depend on draw order.
func draw(seed uint64, fundID string, asOf time.Time) models.FundObservations {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fundID))
	r := rand.New(rand.NewPCG(seed, h.Sum64()))

	between := func(lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }
	whole := func(lo, hi float64) float64 { return math.Floor(between(lo, hi)) }

	return models.FundObservations{
		FundID:           fundID,
		DailyVolatility:  between(0.01, 0.03),
		AnnualVolatility: between(0.10, 0.25),
		SharpeRatio:      between(0.5, 1.5),
		Beta:             between(0.75, 1.25),
		Alpha:            between(-0.02, 0.02),
		MaxDrawdown:      -between(0.10, 0.25),
		Carbon: models.CarbonMetrics{
			AnnualOffset:     whole(1000, 6000),
			OffsetEfficiency: between(0.7, 1.0),
			CarbonIntensity:  whole(50, 150),
		},
		Performance: models.Performance{
			YTD:       between(-0.1, 0.2),
			OneYear:   between(-0.1, 0.3),
			ThreeYear: between(0, 0.6),
			FiveYear:  between(0, 0.8),
		},
		RiskAnalysis: models.RiskAnalysis{
			VarDaily:          between(0.01, 0.03),
			VarWeekly:         between(0.02, 0.06),
			ExpectedShortfall: between(0.02, 0.05),
			InformationRatio:  between(0.5, 1.0),
		},
		Environmental: whole(80, 100),
		Social:        whole(70, 100),
		Governance:    whole(75, 100),
		MarketAnalysis: models.MarketAnalysis{
			MarketShare: between(0, 0.1),
			PeerRanking: int(whole(1, 6)),
			Momentum:    between(-1, 1),
			Sentiment:   between(-1, 1),
		},
		ObservedAt: asOf,
	}
}
