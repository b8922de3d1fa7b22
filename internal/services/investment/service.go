// Package investment keeps the in-memory investments ledger and its overview
package investment

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

// Compile-time interface check
var _ interfaces.InvestmentService = (*Service)(nil)

// maxAmount bounds a single investment
var maxAmount = decimal.New(1, 15)

// Service implements InvestmentService. The ledger lives for the process lifetime.
type Service struct {
	funds       interfaces.FundService
	recommender *analytics.Recommender
	logger      *common.Logger
	now         func() time.Time

	mu          sync.RWMutex
	investments []models.Investment // newest first
}

// NewService creates an empty ledger
func NewService(funds interfaces.FundService, recommender *analytics.Recommender, logger *common.Logger) *Service {
	return &Service{
		funds:       funds,
		recommender: recommender,
		logger:      logger,
		now:         time.Now,
	}
}

// generateInvestmentID returns "inv_" + 8 hex chars.
func generateInvestmentID() string {
	return "inv_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// AddInvestment records a purchase. The amount is rounded to cents and must be positive.
func (s *Service) AddInvestment(ctx context.Context, req models.InvestmentRequest) (*models.Investment, error) {
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", analytics.ErrInvalidArgument, req.Amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return nil, fmt.Errorf("%w: amount exceeds maximum (1e15)", analytics.ErrInvalidArgument)
	}

	fund, err := s.funds.GetFund(ctx, strings.TrimSpace(req.FundID))
	if err != nil {
		return nil, err
	}

	inv := models.Investment{
		ID:       generateInvestmentID(),
		FundID:   fund.ID,
		FundName: fund.Name,
		Amount:   amount,
		Date:     s.now().UTC(),
	}

	s.mu.Lock()
	s.investments = append([]models.Investment{inv}, s.investments...)
	s.mu.Unlock()

	s.logger.Info().Str("id", inv.ID).Str("fund", inv.FundID).
		Str("amount", inv.Amount.StringFixed(2)).Msg("Investment added")
	return &inv, nil
}

// ListInvestments returns a copy of the ledger, newest first
func (s *Service) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Investment, len(s.investments))
	copy(out, s.investments)
	return out, nil
}

// Overview totals invested value and annual carbon offset, then predicts and
// scores each held fund and recommends an allocation across the holdings.
// Every investment counts its fund's annual offset once. Holdings are listed
// in order of first investment, and their invested weights are the current
// allocation the recommendation checks for drift.
func (s *Service) Overview(ctx context.Context) (*models.PortfolioOverview, error) {
	investments, err := s.ListInvestments(ctx)
	if err != nil {
		return nil, err
	}

	overview := &models.PortfolioOverview{
		TotalValue: decimal.Zero,
		Holdings:   []models.HoldingAnalysis{},
	}

	index := make(map[string]int)
	metrics := make(map[string]*models.FundMetrics)
	for i := len(investments) - 1; i >= 0; i-- {
		inv := investments[i]
		m, ok := metrics[inv.FundID]
		if !ok {
			m, err = s.funds.GetMetrics(ctx, inv.FundID)
			if err != nil {
				return nil, fmt.Errorf("metrics for %s: %w", inv.FundID, err)
			}
			metrics[inv.FundID] = m
		}

		overview.TotalValue = overview.TotalValue.Add(inv.Amount)
		overview.TotalCarbonOffset += m.Carbon.AnnualOffset

		h, ok := index[inv.FundID]
		if !ok {
			h = len(overview.Holdings)
			index[inv.FundID] = h
			overview.Holdings = append(overview.Holdings, models.HoldingAnalysis{
				FundID:   inv.FundID,
				FundName: inv.FundName,
				Invested: decimal.Zero,
			})
		}
		overview.Holdings[h].Invested = overview.Holdings[h].Invested.Add(inv.Amount)
		overview.Holdings[h].Investments++
	}

	if len(overview.Holdings) > 0 {
		held := make([]models.FundMetrics, 0, len(overview.Holdings))
		current := make(map[string]float64, len(overview.Holdings))
		for i := range overview.Holdings {
			h := &overview.Holdings[i]
			h.Weight = h.Invested.Div(overview.TotalValue).InexactFloat64()
			current[h.FundID] = h.Weight

			prediction, err := s.funds.PredictFund(ctx, h.FundID)
			if err != nil {
				return nil, fmt.Errorf("prediction for %s: %w", h.FundID, err)
			}
			h.Prediction = prediction.Output

			impact, err := s.funds.AnalyzeImpact(ctx, h.FundID)
			if err != nil {
				return nil, fmt.Errorf("impact for %s: %w", h.FundID, err)
			}
			h.Impact = *impact

			held = append(held, *metrics[h.FundID])
		}

		overview.Recommendation, err = s.recommender.Recommend(held, current)
		if err != nil {
			return nil, err
		}
	}

	overview.GeneratedAt = s.now().UTC()
	return overview, nil
}
