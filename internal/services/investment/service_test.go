package investment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

// stubFunds serves fixed metrics per fund id
type stubFunds struct {
	interfaces.FundService
	metrics map[string]models.FundMetrics
}

func (s *stubFunds) GetFund(_ context.Context, id string) (*models.Fund, error) {
	if _, ok := s.metrics[id]; !ok {
		return nil, interfaces.ErrFundNotFound
	}
	return &models.Fund{ID: id, Name: "Fund " + id}, nil
}

func (s *stubFunds) GetMetrics(_ context.Context, id string) (*models.FundMetrics, error) {
	m, ok := s.metrics[id]
	if !ok {
		return nil, interfaces.ErrFundNotFound
	}
	return &m, nil
}

func (s *stubFunds) PredictFund(_ context.Context, id string) (*models.FundPrediction, error) {
	return &models.FundPrediction{FundID: id, Output: models.PredictionOutput{PredictedPrice: 10, RecommendedAction: models.ActionBuy}}, nil
}

func (s *stubFunds) AnalyzeImpact(_ context.Context, id string) (*models.EnvironmentalImpact, error) {
	return &models.EnvironmentalImpact{FundID: id, ImpactScore: 75, SustainabilityRating: models.RatingGood}, nil
}

func fundMetrics(id string, varDaily, offset float64) models.FundMetrics {
	return models.FundMetrics{
		FundID:       id,
		Carbon:       models.CarbonMetrics{AnnualOffset: offset, OffsetEfficiency: 0.8},
		RiskAnalysis: models.RiskAnalysis{VarDaily: varDaily},
		EsgScores:    models.NewEsgScores(80, 80, 80),
	}
}

func newTestService() *Service {
	funds := &stubFunds{metrics: map[string]models.FundMetrics{
		"wind-energy": fundMetrics("wind-energy", 0.01, 2500),
		"solar-power": fundMetrics("solar-power", 0.02, 1800),
	}}
	svc := NewService(funds, analytics.NewRecommender(analytics.DefaultRebalancePolicy()), common.NewSilentLogger())
	clock := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc
}

func invest(t *testing.T, svc *Service, fundID, amount string) *models.Investment {
	t.Helper()
	inv, err := svc.AddInvestment(context.Background(), models.InvestmentRequest{
		FundID: fundID,
		Amount: decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return inv
}

func TestAddInvestment(t *testing.T) {
	svc := newTestService()

	inv := invest(t, svc, "wind-energy", "250.005")
	assert.Regexp(t, `^inv_[0-9a-f]{8}$`, inv.ID)
	assert.Equal(t, "wind-energy", inv.FundID)
	assert.Equal(t, "Fund wind-energy", inv.FundName)
	assert.Equal(t, "250.01", inv.Amount.String())
	assert.False(t, inv.Date.IsZero())
}

func TestListInvestments_NewestFirst(t *testing.T) {
	svc := newTestService()

	list, err := svc.ListInvestments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	first := invest(t, svc, "wind-energy", "100")
	second := invest(t, svc, "solar-power", "50")

	list, err = svc.ListInvestments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.NotEqual(t, first.ID, second.ID)

	// the returned slice is a copy
	list[0].FundID = "changed"
	again, _ := svc.ListInvestments(context.Background())
	assert.Equal(t, "solar-power", again[0].FundID)
}

func TestAddInvestment_Invalid(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name    string
		fundID  string
		amount  string
		wantErr error
	}{
		{"zero amount", "wind-energy", "0", analytics.ErrInvalidArgument},
		{"negative amount", "wind-energy", "-10", analytics.ErrInvalidArgument},
		{"rounds to zero", "wind-energy", "0.004", analytics.ErrInvalidArgument},
		{"too large", "wind-energy", "1000000000000000", analytics.ErrInvalidArgument},
		{"unknown fund", "coal-power", "100", interfaces.ErrFundNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddInvestment(context.Background(), models.InvestmentRequest{
				FundID: tt.fundID,
				Amount: decimal.RequireFromString(tt.amount),
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	list, _ := svc.ListInvestments(context.Background())
	assert.Empty(t, list)
}

func TestOverview_Empty(t *testing.T) {
	svc := newTestService()

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, overview.TotalValue.IsZero())
	assert.Zero(t, overview.TotalCarbonOffset)
	assert.NotNil(t, overview.Holdings)
	assert.Empty(t, overview.Holdings)
	assert.Nil(t, overview.Recommendation)
}

func TestOverview_AggregatesHoldings(t *testing.T) {
	svc := newTestService()
	invest(t, svc, "wind-energy", "500")
	invest(t, svc, "solar-power", "333.33")
	invest(t, svc, "wind-energy", "166.67")

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1000", overview.TotalValue.String())
	// every investment counts its fund's offset: 2500 + 1800 + 2500
	assert.InDelta(t, 6800.0, overview.TotalCarbonOffset, 1e-9)

	require.Len(t, overview.Holdings, 2)
	wind := overview.Holdings[0]
	solar := overview.Holdings[1]
	assert.Equal(t, "wind-energy", wind.FundID)
	assert.Equal(t, "666.67", wind.Invested.String())
	assert.Equal(t, 2, wind.Investments)
	assert.InDelta(t, 0.66667, wind.Weight, 1e-12)
	assert.Equal(t, models.ActionBuy, wind.Prediction.RecommendedAction)
	assert.Equal(t, models.RatingGood, wind.Impact.SustainabilityRating)

	assert.Equal(t, "solar-power", solar.FundID)
	assert.Equal(t, 1, solar.Investments)
	assert.InDelta(t, 0.33333, solar.Weight, 1e-12)

	rec := overview.Recommendation
	require.NotNil(t, rec)
	require.Len(t, rec.OptimalAllocation, 2)
	// (1 - 0.01/0.03) and (1 - 0.02/0.03)
	assert.InDelta(t, 2.0/3.0, rec.OptimalAllocation[0].Allocation, 1e-9)
	assert.InDelta(t, 1.0/3.0, rec.OptimalAllocation[1].Allocation, 1e-9)
	assert.InDelta(t, 0.015, rec.RiskAssessment.PortfolioRisk, 1e-12)
	assert.InDelta(t, 80.0, rec.RiskAssessment.EsgScore, 1e-9)
	// held weights sit within the drift tolerance of the targets
	assert.False(t, rec.RebalancingNeeded)
}

func TestOverview_DriftTriggersRebalance(t *testing.T) {
	svc := newTestService()
	invest(t, svc, "wind-energy", "100")
	invest(t, svc, "solar-power", "900")

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.NotNil(t, overview.Recommendation)
	assert.True(t, overview.Recommendation.RebalancingNeeded)
	assert.NotEmpty(t, overview.Recommendation.RebalancingReasons)
}

func TestAddInvestment_Concurrent(t *testing.T) {
	svc := newTestService()
	svc.now = time.Now

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddInvestment(context.Background(), models.InvestmentRequest{
				FundID: "wind-energy",
				Amount: decimal.NewFromInt(10),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "200", overview.TotalValue.String())
	require.Len(t, overview.Holdings, 1)
	assert.Equal(t, 20, overview.Holdings[0].Investments)
}
