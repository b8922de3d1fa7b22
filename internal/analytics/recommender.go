package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bobmcallan/greenvest/internal/models"
	"github.com/shopspring/decimal"
)

// RebalancePolicy holds the thresholds that trigger a rebalance
type RebalancePolicy struct {
	MaxPortfolioRisk float64 // mean daily VaR above which the portfolio is rebalanced
	DriftTolerance   float64 // absolute weight drift from target that triggers a rebalance
}

// DefaultRebalancePolicy returns the default thresholds
func DefaultRebalancePolicy() RebalancePolicy {
	return RebalancePolicy{MaxPortfolioRisk: 0.02, DriftTolerance: 0.05}
}

// Recommender builds inverse-risk portfolio allocations
type Recommender struct {
	policy RebalancePolicy
	now    func() time.Time
}

// NewRecommender creates a Recommender with the given rebalance policy
func NewRecommender(policy RebalancePolicy) *Recommender {
	return &Recommender{policy: policy, now: time.Now}
}

// Recommend allocates across funds by inverse share of daily VaR.
//
// A single fund receives the whole allocation. When every fund has zero VaR the
// weights are equal. current maps fund id to its held weight; it may be nil.
// Each fund's ESG total is rebuilt from its components; a supplied Total is ignored.
func (r *Recommender) Recommend(funds []models.FundMetrics, current map[string]float64) (*models.PortfolioRecommendation, error) {
	if len(funds) == 0 {
		return nil, fmt.Errorf("%w: at least one fund is required", ErrInvalidArgument)
	}

	var totalRisk, esgSum float64
	for _, f := range funds {
		v := f.RiskAnalysis.VarDaily
		if v < 0 || !isFinite(v) {
			return nil, fmt.Errorf("%w: var_daily for %s must be non-negative, got %v", ErrInvalidArgument, f.FundID, v)
		}
		esg := f.EsgScores
		if !isFinite(esg.Environmental) || !isFinite(esg.Social) || !isFinite(esg.Governance) {
			return nil, fmt.Errorf("%w: esg scores for %s must be finite", ErrInvalidArgument, f.FundID)
		}
		totalRisk += v
		esgSum += models.NewEsgScores(esg.Environmental, esg.Social, esg.Governance).Total
	}
	if !isFinite(totalRisk) || !isFinite(esgSum) {
		return nil, fmt.Errorf("%w: total risk or esg sum overflows", ErrNumericDegenerate)
	}

	n := float64(len(funds))
	allocations := make([]models.Allocation, len(funds))
	for i, f := range funds {
		allocations[i] = models.Allocation{
			FundID:     f.FundID,
			Allocation: allocationWeight(f.RiskAnalysis.VarDaily, totalRisk, len(funds)),
		}
	}

	assessment := models.RiskAssessment{
		PortfolioRisk:        totalRisk / n,
		DiversificationScore: math.Min(100, 100-totalRisk*100),
		EsgScore:             esgSum / n,
	}
	if !isFinite(assessment.DiversificationScore) {
		return nil, fmt.Errorf("%w: diversification score overflows", ErrNumericDegenerate)
	}
	for _, a := range allocations {
		if !isFinite(a.Allocation) {
			return nil, fmt.Errorf("%w: allocation for %s is not finite", ErrNumericDegenerate, a.FundID)
		}
	}
	needed, reasons := r.rebalance(assessment.PortfolioRisk, allocations, current)

	return &models.PortfolioRecommendation{
		OptimalAllocation:  allocations,
		RiskAssessment:     assessment,
		RebalancingNeeded:  needed,
		RebalancingReasons: reasons,
		GeneratedAt:        r.now().UTC(),
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// allocationWeight is (1 - risk/totalRisk) / (n - 1), special-cased for n = 1 and
// totalRisk = 0 where the formula is undefined.
func allocationWeight(risk, totalRisk float64, n int) float64 {
	if n == 1 {
		return 1
	}
	if totalRisk == 0 {
		return 1 / float64(n)
	}
	return (1 - risk/totalRisk) / float64(n-1)
}

func (r *Recommender) rebalance(portfolioRisk float64, target []models.Allocation, current map[string]float64) (bool, []string) {
	var reasons []string
	if r.policy.MaxPortfolioRisk > 0 && portfolioRisk > r.policy.MaxPortfolioRisk {
		reasons = append(reasons, fmt.Sprintf("portfolio risk %.4f exceeds limit %.4f", portfolioRisk, r.policy.MaxPortfolioRisk))
	}
	if len(current) == 0 {
		return len(reasons) > 0, reasons
	}

	targets := make(map[string]float64, len(target))
	for _, a := range target {
		targets[a.FundID] += a.Allocation
	}
	ids := make([]string, 0, len(targets)+len(current))
	for id := range targets {
		ids = append(ids, id)
	}
	for id := range current {
		if _, ok := targets[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		drift := current[id] - targets[id]
		if math.Abs(drift) > r.policy.DriftTolerance {
			reasons = append(reasons, fmt.Sprintf("%s drifted %+.1f%% from target %.1f%%", id, drift*100, targets[id]*100))
		}
	}
	return len(reasons) > 0, reasons
}

// SplitAmount assigns a cent-rounded share of amount to each allocation in place.
// Shares are proportional to the allocation weights and always sum to the amount
// rounded to cents; leftover cents go to the largest remainders.
func SplitAmount(amount decimal.Decimal, allocations []models.Allocation) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", ErrInvalidArgument)
	}
	if len(allocations) == 0 {
		return decimal.Zero, fmt.Errorf("%w: no allocations to split across", ErrInvalidArgument)
	}
	total := amount.Round(2)

	weightSum := decimal.Zero
	weights := make([]decimal.Decimal, len(allocations))
	for i, a := range allocations {
		if a.Allocation < 0 {
			return decimal.Zero, fmt.Errorf("%w: allocation for %s is negative", ErrInvalidArgument, a.FundID)
		}
		weights[i] = decimal.NewFromFloat(a.Allocation)
		weightSum = weightSum.Add(weights[i])
	}
	if weightSum.IsZero() {
		for i := range weights {
			weights[i] = decimal.NewFromInt(1)
		}
		weightSum = decimal.NewFromInt(int64(len(weights)))
	}

	type share struct {
		index     int
		remainder decimal.Decimal
	}
	shares := make([]share, len(allocations))
	amounts := make([]decimal.Decimal, len(allocations))
	assigned := decimal.Zero
	for i, w := range weights {
		raw := total.Mul(w).Div(weightSum)
		amounts[i] = raw.Truncate(2)
		assigned = assigned.Add(amounts[i])
		shares[i] = share{index: i, remainder: raw.Sub(amounts[i])}
	}

	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].remainder.GreaterThan(shares[b].remainder)
	})
	cent := decimal.New(1, -2)
	leftover := total.Sub(assigned).Div(cent).IntPart()
	for k := int64(0); k < leftover; k++ {
		i := shares[int(k)%len(shares)].index
		amounts[i] = amounts[i].Add(cent)
	}

	for i := range allocations {
		a := amounts[i]
		allocations[i].Amount = &a
	}
	return total, nil
}
