// Package fund provides per-fund analytics services
package fund

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

// Prediction inputs used when a fund's metrics leave them unset
const (
	defaultVolatility         = 0.02
	defaultVolume             = 1000000
	defaultEnvironmentalScore = 80
)

// DefaultChartPeriod is the moving-average window drawn on price charts
const DefaultChartPeriod = 7

// Engine groups the analytics components the service drives
type Engine struct {
	Synthesizer *analytics.Synthesizer
	Predictor   interfaces.PricePredictor
	Impact      *analytics.ImpactAnalyzer
	Insights    analytics.InsightOptions
}

// Service implements FundService
type Service struct {
	catalog interfaces.FundCatalog
	prices  interfaces.PriceSource
	metrics interfaces.MetricsSource
	store   interfaces.SnapshotStore
	engine  Engine
	logger  *common.Logger
	now     func() time.Time
}

// NewService creates a new fund service
func NewService(
	catalog interfaces.FundCatalog,
	prices interfaces.PriceSource,
	metrics interfaces.MetricsSource,
	store interfaces.SnapshotStore,
	engine Engine,
	logger *common.Logger,
) *Service {
	return &Service{
		catalog: catalog,
		prices:  prices,
		metrics: metrics,
		store:   store,
		engine:  engine,
		logger:  logger,
		now:     time.Now,
	}
}

// ListFunds returns the catalogue
func (s *Service) ListFunds(ctx context.Context) ([]models.Fund, error) {
	return s.catalog.ListFunds(ctx)
}

// GetFund returns one catalogue entry
func (s *Service) GetFund(ctx context.Context, fundID string) (*models.Fund, error) {
	return s.catalog.GetFund(ctx, fundID)
}

// GetPriceHistory returns the fund's cached price history
func (s *Service) GetPriceHistory(ctx context.Context, fundID string) (*models.PriceHistory, error) {
	if _, err := s.catalog.GetFund(ctx, fundID); err != nil {
		return nil, err
	}
	history, err := s.store.FetchPrices(ctx, fundID, func(ctx context.Context) (*models.PriceHistory, error) {
		s.logger.Debug().Str("fund", fundID).Str("source", s.prices.Name()).Msg("Loading price history")
		return s.prices.GetPriceHistory(ctx, fundID)
	})
	if err != nil {
		return nil, fmt.Errorf("prices for %s: %w", fundID, err)
	}
	return history, nil
}

// GetMetrics returns the fund's metrics snapshot, synthesizing it on a miss
func (s *Service) GetMetrics(ctx context.Context, fundID string) (*models.FundMetrics, error) {
	fund, err := s.catalog.GetFund(ctx, fundID)
	if err != nil {
		return nil, err
	}
	return s.store.FetchMetrics(ctx, fundID, func(ctx context.Context) (*models.FundMetrics, error) {
		history, err := s.GetPriceHistory(ctx, fundID)
		if err != nil {
			return nil, err
		}
		obs, err := s.metrics.GetObservations(ctx, fundID)
		if err != nil {
			return nil, fmt.Errorf("observations for %s: %w", fundID, err)
		}
		m, err := s.engine.Synthesizer.Synthesize(*obs, history.Closes(), fund.Value)
		if err != nil {
			return nil, fmt.Errorf("metrics for %s: %w", fundID, err)
		}
		s.logger.Debug().Str("fund", fundID).Float64("esg_total", m.EsgScores.Total).Msg("Metrics synthesized")
		return m, nil
	})
}

// GetInsights summarises the fund's trend, risk, impact and market position
func (s *Service) GetInsights(ctx context.Context, fundID string) (*models.FundInsights, error) {
	m, history, err := s.load(ctx, fundID)
	if err != nil {
		return nil, err
	}
	return analytics.Insights(fundID, history.Closes(), m, s.engine.Insights)
}

// PredictFund runs the predictor on inputs derived from the fund's metrics
func (s *Service) PredictFund(ctx context.Context, fundID string) (*models.FundPrediction, error) {
	m, history, err := s.load(ctx, fundID)
	if err != nil {
		return nil, err
	}
	input := PredictionInput(m, history.Closes())
	out, err := s.engine.Predictor.Predict(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("prediction for %s: %w", fundID, err)
	}
	return &models.FundPrediction{
		FundID:      fundID,
		Input:       input,
		Output:      *out,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// AnalyzeImpact scores the fund's carbon metrics
func (s *Service) AnalyzeImpact(ctx context.Context, fundID string) (*models.EnvironmentalImpact, error) {
	m, err := s.GetMetrics(ctx, fundID)
	if err != nil {
		return nil, err
	}
	impact, err := s.engine.Impact.Analyze(m.Carbon)
	if err != nil {
		return nil, fmt.Errorf("impact for %s: %w", fundID, err)
	}
	impact.FundID = fundID
	return impact, nil
}

// MovingAverage returns the period window means of the fund's closes
func (s *Service) MovingAverage(ctx context.Context, fundID string, period int) ([]float64, error) {
	history, err := s.GetPriceHistory(ctx, fundID)
	if err != nil {
		return nil, err
	}
	return analytics.MovingAverageValues(history.Closes(), period)
}

// RenderChart renders the fund's closes with a moving-average overlay as PNG.
// A non-positive period uses DefaultChartPeriod.
func (s *Service) RenderChart(ctx context.Context, fundID string, period int) ([]byte, error) {
	fund, err := s.catalog.GetFund(ctx, fundID)
	if err != nil {
		return nil, err
	}
	history, err := s.GetPriceHistory(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if period <= 0 {
		period = DefaultChartPeriod
	}
	return RenderPriceChart(fund, history, period)
}

// Refresh purges all snapshots and re-warms metrics for every catalogue fund
func (s *Service) Refresh(ctx context.Context) (int, error) {
	purged := s.store.Purge()

	funds, err := s.catalog.ListFunds(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list funds: %w", err)
	}

	var errs []error
	warmed := 0
	for _, f := range funds {
		if _, err := s.GetMetrics(ctx, f.ID); err != nil {
			s.logger.Warn().Err(err).Str("fund", f.ID).Msg("Failed to warm metrics")
			errs = append(errs, err)
			continue
		}
		warmed++
	}

	s.logger.Info().Int("purged", purged).Int("warmed", warmed).Int("failed", len(errs)).Msg("Snapshots refreshed")
	return warmed, errors.Join(errs...)
}

func (s *Service) load(ctx context.Context, fundID string) (*models.FundMetrics, *models.PriceHistory, error) {
	m, err := s.GetMetrics(ctx, fundID)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.GetPriceHistory(ctx, fundID)
	if err != nil {
		return nil, nil, err
	}
	return m, history, nil
}

// PredictionInput builds predictor features from a metrics bundle and closes.
// Daily volatility defaults to 0.02 and environmental score to 80 when unset.
func PredictionInput(m *models.FundMetrics, closes models.PriceSeries) models.PredictionInput {
	vol := m.Volatility.Daily
	if vol <= 0 {
		vol = defaultVolatility
	}
	env := m.EsgScores.Environmental
	if env <= 0 {
		env = defaultEnvironmentalScore
	}
	return models.PredictionInput{
		HistoricalPrices:   closes,
		Volatility:         min(vol, 1),
		Volume:             defaultVolume,
		MarketSentiment:    m.MarketAnalysis.Sentiment,
		EnvironmentalScore: env,
	}
}
