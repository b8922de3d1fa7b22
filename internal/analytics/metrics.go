package analytics

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bobmcallan/greenvest/internal/models"
)

// SynthesizerOptions configures derivations that depend on market conventions
type SynthesizerOptions struct {
	RiskFreeRate      float64
	AnnualizationDays int
}

// Synthesizer combines raw fund observations with a price history into a
// FundMetrics bundle. Every derived field is a function of its inputs only.
type Synthesizer struct {
	riskFreeRate      float64
	annualizationDays int
	now               func() time.Time
}

// NewSynthesizer creates a Synthesizer. Zero options fall back to the defaults.
func NewSynthesizer(opts SynthesizerOptions) *Synthesizer {
	if opts.AnnualizationDays <= 0 {
		opts.AnnualizationDays = DefaultAnnualizationDays
	}
	return &Synthesizer{
		riskFreeRate:      opts.RiskFreeRate,
		annualizationDays: opts.AnnualizationDays,
		now:               time.Now,
	}
}

// Synthesize builds the metrics bundle for one fund.
//
// Zero-valued volatility, Sharpe ratio and drawdown observations are treated as
// not observed and derived from prices instead. fundValue, when positive, anchors
// the Bollinger bands to the fund's value rather than its unit price.
func (s *Synthesizer) Synthesize(obs models.FundObservations, prices models.PriceSeries, fundValue float64) (*models.FundMetrics, error) {
	if obs.FundID == "" {
		return nil, fmt.Errorf("%w: fund id is required", ErrInvalidArgument)
	}
	returns, err := Returns(prices)
	if err != nil {
		return nil, fmt.Errorf("prices for %s: %w", obs.FundID, err)
	}

	daily := obs.DailyVolatility
	if daily <= 0 {
		daily = returnsVolatility(returns)
	}
	annual := obs.AnnualVolatility
	if annual <= 0 {
		annual = Annualize(daily, s.annualizationDays)
	}

	sharpe := obs.SharpeRatio
	if sharpe == 0 {
		sharpe, err = AnnualizedSharpe(returns, s.riskFreeRate, s.annualizationDays)
		if err != nil && !errors.Is(err, ErrNumericDegenerate) {
			return nil, err
		}
	}

	drawdown := -math.Abs(obs.MaxDrawdown)
	if obs.MaxDrawdown == 0 {
		drawdown = MaxDrawdown(prices)
	}

	macd, _, _ := MACD(prices, MACDFast, MACDSlow, MACDSignal)
	bands := BollingerBands(prices, BollingerPeriod, BollingerWidth)
	if last := prices.Last(); fundValue > 0 && last > 0 {
		scale := fundValue / last
		bands = models.BollingerBands{
			Upper:  bands.Upper * scale,
			Middle: bands.Middle * scale,
			Lower:  bands.Lower * scale,
		}
	}

	return &models.FundMetrics{
		FundID: obs.FundID,
		Volatility: models.Volatility{
			Daily:  daily,
			Annual: annual,
		},
		Risk: models.RiskMetrics{
			DailyVolatility:  daily,
			AnnualVolatility: annual,
			SharpeRatio:      sharpe,
			Beta:             obs.Beta,
			Alpha:            obs.Alpha,
			MaxDrawdown:      drawdown,
		},
		Carbon: models.CarbonMetrics{
			AnnualOffset:     math.Max(0, obs.Carbon.AnnualOffset),
			OffsetEfficiency: clamp(obs.Carbon.OffsetEfficiency, 0, 1),
			CarbonIntensity:  math.Max(0, obs.Carbon.CarbonIntensity),
		},
		Performance:  obs.Performance,
		RiskAnalysis: obs.RiskAnalysis,
		EsgScores: models.NewEsgScores(
			clamp(obs.Environmental, 0, 100),
			clamp(obs.Social, 0, 100),
			clamp(obs.Governance, 0, 100),
		),
		MarketAnalysis: models.MarketAnalysis{
			MarketShare: math.Max(0, obs.MarketAnalysis.MarketShare),
			PeerRanking: obs.MarketAnalysis.PeerRanking,
			Momentum:    clamp(obs.MarketAnalysis.Momentum, -1, 1),
			Sentiment:   clamp(obs.MarketAnalysis.Sentiment, -1, 1),
		},
		TechnicalIndicators: models.TechnicalIndicators{
			RSI:            RSI(prices, RSIPeriod),
			MACD:           macd,
			BollingerBands: bands,
		},
		GeneratedAt: s.now().UTC(),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
