package interfaces

import (
	"context"

	"github.com/bobmcallan/greenvest/internal/models"
)

// FundService serves per-fund analytics
type FundService interface {
	ListFunds(ctx context.Context) ([]models.Fund, error)
	GetFund(ctx context.Context, fundID string) (*models.Fund, error)

	// GetPriceHistory returns the fund's closes from the configured price source
	GetPriceHistory(ctx context.Context, fundID string) (*models.PriceHistory, error)

	// GetMetrics returns the cached metrics snapshot, synthesizing it on a miss
	GetMetrics(ctx context.Context, fundID string) (*models.FundMetrics, error)

	GetInsights(ctx context.Context, fundID string) (*models.FundInsights, error)
	PredictFund(ctx context.Context, fundID string) (*models.FundPrediction, error)
	AnalyzeImpact(ctx context.Context, fundID string) (*models.EnvironmentalImpact, error)

	// MovingAverage returns the window means of the fund's closes
	MovingAverage(ctx context.Context, fundID string, period int) ([]float64, error)

	// RenderChart renders closes with a moving-average overlay as PNG
	RenderChart(ctx context.Context, fundID string, period int) ([]byte, error)

	// Refresh purges snapshots and re-warms every catalogue fund.
	// Returns the number of funds re-warmed.
	Refresh(ctx context.Context) (int, error)
}

// PortfolioService builds multi-fund recommendations
type PortfolioService interface {
	// Recommend allocates across catalogue funds (FundIDs) or supplied metrics (Funds)
	Recommend(ctx context.Context, req models.RecommendRequest) (*models.PortfolioRecommendation, error)

	// Compare returns metrics, prediction and impact per fund with a joint recommendation
	Compare(ctx context.Context, fundIDs []string) (*models.FundComparison, error)
}

// InvestmentService keeps the in-memory investments ledger
type InvestmentService interface {
	// AddInvestment records a purchase of a catalogue fund
	AddInvestment(ctx context.Context, req models.InvestmentRequest) (*models.Investment, error)

	// ListInvestments returns every investment, newest first
	ListInvestments(ctx context.Context) ([]models.Investment, error)

	// Overview totals the ledger and analyses each held fund
	Overview(ctx context.Context) (*models.PortfolioOverview, error)
}
