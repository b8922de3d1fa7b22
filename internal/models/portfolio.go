package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation is one fund's share of a recommended portfolio
type Allocation struct {
	FundID     string           `json:"fund_id"`
	Allocation float64          `json:"allocation"`       // fraction of the portfolio
	Amount     *decimal.Decimal `json:"amount,omitempty"` // set when an investment amount is given
}

// RiskAssessment summarises portfolio level risk
type RiskAssessment struct {
	PortfolioRisk        float64 `json:"portfolio_risk"`
	DiversificationScore float64 `json:"diversification_score"`
	EsgScore             float64 `json:"esg_score"`
}

// PortfolioRecommendation is the recommender result
type PortfolioRecommendation struct {
	OptimalAllocation  []Allocation     `json:"optimal_allocation"`
	RiskAssessment     RiskAssessment   `json:"risk_assessment"`
	RebalancingNeeded  bool             `json:"rebalancing_needed"`
	RebalancingReasons []string         `json:"rebalancing_reasons,omitempty"`
	TotalAmount        *decimal.Decimal `json:"total_amount,omitempty"`
	GeneratedAt        time.Time        `json:"generated_at"`
}

// RecommendRequest asks for a portfolio over catalogue funds or supplied metrics.
// CurrentAllocation maps fund id to its current weight and drives drift checks.
type RecommendRequest struct {
	FundIDs           []string           `json:"fund_ids,omitempty"`
	Funds             []FundMetrics      `json:"funds,omitempty"`
	Amount            *decimal.Decimal   `json:"amount,omitempty"`
	CurrentAllocation map[string]float64 `json:"current_allocation,omitempty"`
}

// ComparedFund is one column of a fund comparison
type ComparedFund struct {
	Fund       Fund                `json:"fund"`
	Metrics    FundMetrics         `json:"metrics"`
	Prediction PredictionOutput    `json:"prediction"`
	Impact     EnvironmentalImpact `json:"environmental_impact"`
}

// FundComparison compares funds side by side with a joint recommendation
type FundComparison struct {
	Funds          []ComparedFund           `json:"funds"`
	Recommendation *PortfolioRecommendation `json:"recommendation"`
	GeneratedAt    time.Time                `json:"generated_at"`
}
