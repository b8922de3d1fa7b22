package models

// TechnicalAnalysis summarises price action
type TechnicalAnalysis struct {
	Trend      string  `json:"trend"` // Upward or Downward
	Volatility float64 `json:"volatility"`
	Momentum   string  `json:"momentum"` // Positive or Negative
	RSISignal  string  `json:"rsi_signal"`
	Crossover  string  `json:"crossover"`
}

// RiskSummary is the risk section of fund insights
type RiskSummary struct {
	RiskLevel   string  `json:"risk_level"` // High or Moderate
	SharpeRatio float64 `json:"sharpe_ratio"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

// ImpactSummary is the environmental section of fund insights
type ImpactSummary struct {
	CarbonOffset float64 `json:"carbon_offset"`
	Efficiency   float64 `json:"efficiency"`
	Intensity    float64 `json:"intensity"`
}

// EsgAnalysis is the ESG section of fund insights
type EsgAnalysis struct {
	TotalScore    float64 `json:"total_score"`
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
}

// MarketPosition is the market section of fund insights
type MarketPosition struct {
	MarketShare float64 `json:"market_share"`
	PeerRanking int     `json:"peer_ranking"`
	Sentiment   float64 `json:"sentiment"`
}

// FundInsights is a readable digest of a fund's metrics
type FundInsights struct {
	FundID              string            `json:"fund_id"`
	TechnicalAnalysis   TechnicalAnalysis `json:"technical_analysis"`
	RiskAssessment      RiskSummary       `json:"risk_assessment"`
	EnvironmentalImpact ImpactSummary     `json:"environmental_impact"`
	EsgAnalysis         EsgAnalysis       `json:"esg_analysis"`
	MarketPosition      MarketPosition    `json:"market_position"`
}
