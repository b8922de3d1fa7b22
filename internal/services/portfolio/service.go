// Package portfolio provides multi-fund recommendation services
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

// Service implements PortfolioService
type Service struct {
	funds       interfaces.FundService
	recommender *analytics.Recommender
	logger      *common.Logger
	now         func() time.Time
}

// NewService creates a new portfolio service
func NewService(funds interfaces.FundService, recommender *analytics.Recommender, logger *common.Logger) *Service {
	return &Service{
		funds:       funds,
		recommender: recommender,
		logger:      logger,
		now:         time.Now,
	}
}

// Recommend allocates across the supplied metrics plus the metrics of each
// catalogue fund in FundIDs. A fund may appear only once across both lists.
// When Amount is set it is split across the allocations in cents.
func (s *Service) Recommend(ctx context.Context, req models.RecommendRequest) (*models.PortfolioRecommendation, error) {
	funds := make([]models.FundMetrics, 0, len(req.Funds)+len(req.FundIDs))
	seen := make(map[string]bool, cap(funds))

	for _, f := range req.Funds {
		if f.FundID == "" {
			return nil, fmt.Errorf("%w: supplied fund metrics need a fund_id", analytics.ErrInvalidArgument)
		}
		if seen[f.FundID] {
			return nil, fmt.Errorf("%w: duplicate fund %s", analytics.ErrInvalidArgument, f.FundID)
		}
		seen[f.FundID] = true
		funds = append(funds, f)
	}
	for _, id := range req.FundIDs {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate fund %s", analytics.ErrInvalidArgument, id)
		}
		seen[id] = true
		m, err := s.funds.GetMetrics(ctx, id)
		if err != nil {
			return nil, err
		}
		funds = append(funds, *m)
	}

	rec, err := s.recommender.Recommend(funds, req.CurrentAllocation)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		total, err := analytics.SplitAmount(*req.Amount, rec.OptimalAllocation)
		if err != nil {
			return nil, err
		}
		rec.TotalAmount = &total
	}

	s.logger.Info().
		Int("funds", len(funds)).
		Float64("portfolio_risk", rec.RiskAssessment.PortfolioRisk).
		Bool("rebalance", rec.RebalancingNeeded).
		Msg("Portfolio recommended")

	return rec, nil
}

// Compare gathers metrics, prediction and impact for each fund in order and
// recommends a joint allocation across them.
func (s *Service) Compare(ctx context.Context, fundIDs []string) (*models.FundComparison, error) {
	if len(fundIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one fund is required", analytics.ErrInvalidArgument)
	}

	compared := make([]models.ComparedFund, 0, len(fundIDs))
	metrics := make([]models.FundMetrics, 0, len(fundIDs))
	seen := make(map[string]bool, len(fundIDs))

	for _, id := range fundIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		fund, err := s.funds.GetFund(ctx, id)
		if err != nil {
			return nil, err
		}
		m, err := s.funds.GetMetrics(ctx, id)
		if err != nil {
			return nil, err
		}
		prediction, err := s.funds.PredictFund(ctx, id)
		if err != nil {
			return nil, err
		}
		impact, err := s.funds.AnalyzeImpact(ctx, id)
		if err != nil {
			return nil, err
		}

		compared = append(compared, models.ComparedFund{
			Fund:       *fund,
			Metrics:    *m,
			Prediction: prediction.Output,
			Impact:     *impact,
		})
		metrics = append(metrics, *m)
	}

	rec, err := s.recommender.Recommend(metrics, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("funds", len(compared)).Msg("Funds compared")

	return &models.FundComparison{
		Funds:          compared,
		Recommendation: rec,
		GeneratedAt:    s.now().UTC(),
	}, nil
}
