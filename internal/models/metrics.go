package models

import (
	"math"
	"time"
)

// Volatility holds daily and annualised volatility of returns
type Volatility struct {
	Daily  float64 `json:"daily"`
	Annual float64 `json:"annual"`
}

// RiskMetrics holds the headline risk figures for a fund
type RiskMetrics struct {
	DailyVolatility  float64 `json:"daily_volatility"`
	AnnualVolatility float64 `json:"annual_volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	Beta             float64 `json:"beta"`
	Alpha            float64 `json:"alpha"`
	MaxDrawdown      float64 `json:"max_drawdown"` // zero or negative
}

// CarbonMetrics describes the environmental footprint of a fund
type CarbonMetrics struct {
	AnnualOffset     float64 `json:"annual_offset" validate:"gte=0"`           // tonnes CO2 per year
	OffsetEfficiency float64 `json:"offset_efficiency" validate:"gte=0,lte=1"` // fraction
	CarbonIntensity  float64 `json:"carbon_intensity" validate:"gte=0"`        // gCO2/kWh
}

// Performance holds trailing returns as fractions
type Performance struct {
	YTD       float64 `json:"ytd"`
	OneYear   float64 `json:"one_year"`
	ThreeYear float64 `json:"three_year"`
	FiveYear  float64 `json:"five_year"`
}

// RiskAnalysis holds value-at-risk style figures as fractions
type RiskAnalysis struct {
	VarDaily          float64 `json:"var_daily"`
	VarWeekly         float64 `json:"var_weekly"`
	ExpectedShortfall float64 `json:"expected_shortfall"`
	InformationRatio  float64 `json:"information_ratio"`
}

// EsgScores holds environmental, social and governance scores on 0-100.
// Total is derived; build values with NewEsgScores.
type EsgScores struct {
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
	Total         float64 `json:"total"`
}

// NewEsgScores builds an EsgScores with Total = round(mean(E, S, G)).
func NewEsgScores(environmental, social, governance float64) EsgScores {
	return EsgScores{
		Environmental: environmental,
		Social:        social,
		Governance:    governance,
		Total:         math.Round((environmental + social + governance) / 3),
	}
}

// MarketAnalysis describes a fund's position among its peers
type MarketAnalysis struct {
	MarketShare float64 `json:"market_share"`
	PeerRanking int     `json:"peer_ranking"`
	Momentum    float64 `json:"momentum"`  // -1..1
	Sentiment   float64 `json:"sentiment"` // -1..1
}

// BollingerBands holds the band levels
type BollingerBands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// TechnicalIndicators holds indicators derived from the price history
type TechnicalIndicators struct {
	RSI            float64        `json:"rsi"`
	MACD           float64        `json:"macd"`
	BollingerBands BollingerBands `json:"bollinger_bands"`
}

// FundObservations are the raw per-fund inputs supplied by a metrics feed.
// Derived fields (ESG total, technical indicators) are not part of it.
type FundObservations struct {
	FundID           string         `json:"fund_id"`
	DailyVolatility  float64        `json:"daily_volatility"`
	AnnualVolatility float64        `json:"annual_volatility"` // 0 derives it from the daily figure
	SharpeRatio      float64        `json:"sharpe_ratio"`
	Beta             float64        `json:"beta"`
	Alpha            float64        `json:"alpha"`
	MaxDrawdown      float64        `json:"max_drawdown"`
	Carbon           CarbonMetrics  `json:"carbon"`
	Performance      Performance    `json:"performance"`
	RiskAnalysis     RiskAnalysis   `json:"risk_analysis"`
	Environmental    float64        `json:"environmental"`
	Social           float64        `json:"social"`
	Governance       float64        `json:"governance"`
	MarketAnalysis   MarketAnalysis `json:"market_analysis"`
	ObservedAt       time.Time      `json:"observed_at"`
}

// FundMetrics is the full analytics bundle for one fund
type FundMetrics struct {
	FundID              string              `json:"fund_id"`
	Volatility          Volatility          `json:"volatility"`
	Risk                RiskMetrics         `json:"risk"`
	Carbon              CarbonMetrics       `json:"carbon"`
	Performance         Performance         `json:"performance"`
	RiskAnalysis        RiskAnalysis        `json:"risk_analysis"`
	EsgScores           EsgScores           `json:"esg_scores"`
	MarketAnalysis      MarketAnalysis      `json:"market_analysis"`
	TechnicalIndicators TechnicalIndicators `json:"technical_indicators"`
	GeneratedAt         time.Time           `json:"generated_at"`
}
