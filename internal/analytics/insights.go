package analytics

import (
	"fmt"

	"github.com/bobmcallan/greenvest/internal/models"
)

// InsightOptions sets the moving-average windows used for trend detection
type InsightOptions struct {
	ShortWindow int
	LongWindow  int
}

// highRiskVolatility is the annual volatility above which a fund is rated High risk
const highRiskVolatility = 0.2

// Insights summarises a fund's price action and metrics.
// Windows longer than the price history are shortened to its length.
func Insights(fundID string, prices models.PriceSeries, m *models.FundMetrics, opts InsightOptions) (*models.FundInsights, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: metrics for %s are required", ErrInvalidArgument, fundID)
	}
	if opts.ShortWindow <= 0 {
		opts.ShortWindow = 20
	}
	if opts.LongWindow <= 0 {
		opts.LongWindow = 50
	}

	trend, err := Trend(prices, opts.ShortWindow, opts.LongWindow)
	if err != nil {
		return nil, err
	}
	volatility, err := Volatility(prices)
	if err != nil {
		return nil, err
	}

	momentum := "Negative"
	if m.TechnicalIndicators.RSI > 50 {
		momentum = "Positive"
	}
	riskLevel := "Moderate"
	if m.Volatility.Annual > highRiskVolatility {
		riskLevel = "High"
	}

	return &models.FundInsights{
		FundID: fundID,
		TechnicalAnalysis: models.TechnicalAnalysis{
			Trend:      trend,
			Volatility: volatility,
			Momentum:   momentum,
			RSISignal:  ClassifyRSI(m.TechnicalIndicators.RSI),
			Crossover:  DetectCrossover(prices, min(opts.ShortWindow, len(prices)-2), min(opts.LongWindow, len(prices)-1)),
		},
		RiskAssessment: models.RiskSummary{
			RiskLevel:   riskLevel,
			SharpeRatio: m.Risk.SharpeRatio,
			MaxDrawdown: m.Risk.MaxDrawdown,
		},
		EnvironmentalImpact: models.ImpactSummary{
			CarbonOffset: m.Carbon.AnnualOffset,
			Efficiency:   m.Carbon.OffsetEfficiency,
			Intensity:    m.Carbon.CarbonIntensity,
		},
		EsgAnalysis: models.EsgAnalysis{
			TotalScore:    m.EsgScores.Total,
			Environmental: m.EsgScores.Environmental,
			Social:        m.EsgScores.Social,
			Governance:    m.EsgScores.Governance,
		},
		MarketPosition: models.MarketPosition{
			MarketShare: m.MarketAnalysis.MarketShare,
			PeerRanking: m.MarketAnalysis.PeerRanking,
			Sentiment:   m.MarketAnalysis.Sentiment,
		},
	}, nil
}

// Trend compares the latest short and long moving averages: "Upward" when the
// short average is strictly above the long one, otherwise "Downward".
func Trend(prices models.PriceSeries, short, long int) (string, error) {
	if len(prices) == 0 {
		return "", fmt.Errorf("%w: prices must not be empty", ErrInvalidArgument)
	}
	shortMA, err := lastMovingAverage(prices, min(short, len(prices)))
	if err != nil {
		return "", err
	}
	longMA, err := lastMovingAverage(prices, min(long, len(prices)))
	if err != nil {
		return "", err
	}
	if shortMA > longMA {
		return "Upward", nil
	}
	return "Downward", nil
}

func lastMovingAverage(prices []float64, period int) (float64, error) {
	seq, err := MovingAverage(prices, period)
	if err != nil {
		return 0, err
	}
	var last float64
	for v := range seq {
		last = v
	}
	return last, nil
}
