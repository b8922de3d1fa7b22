package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is one purchase recorded in the investments ledger
type Investment struct {
	ID       string          `json:"id"`
	FundID   string          `json:"fund_id"`
	FundName string          `json:"fund_name"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

// InvestmentRequest records a purchase of a catalogue fund
type InvestmentRequest struct {
	FundID string          `json:"fund_id" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// HoldingAnalysis aggregates the investments in one fund with its
// prediction and environmental impact
type HoldingAnalysis struct {
	FundID      string              `json:"fund_id"`
	FundName    string              `json:"fund_name"`
	Invested    decimal.Decimal     `json:"invested"`
	Investments int                 `json:"investments"`
	Weight      float64             `json:"weight"` // share of total invested
	Prediction  PredictionOutput    `json:"prediction"`
	Impact      EnvironmentalImpact `json:"environmental_impact"`
}

// PortfolioOverview summarises the ledger. Recommendation is nil when
// nothing has been invested.
type PortfolioOverview struct {
	TotalValue        decimal.Decimal          `json:"total_value"`
	TotalCarbonOffset float64                  `json:"total_carbon_offset"` // tonnes CO2 per year
	Holdings          []HoldingAnalysis        `json:"holdings"`
	Recommendation    *PortfolioRecommendation `json:"recommendation,omitempty"`
	GeneratedAt       time.Time                `json:"generated_at"`
}
