package app

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/models"
)

// formatFundList formats the catalogue as a markdown table
func formatFundList(funds []models.Fund) string {
	var sb strings.Builder
	sb.WriteString("# Green Funds\n\n")
	if len(funds) == 0 {
		sb.WriteString("No funds available.\n")
		return sb.String()
	}

	sb.WriteString("| ID | Name | Symbol | Value | Change | TER |\n")
	sb.WriteString("|----|------|--------|-------|--------|-----|\n")
	for _, f := range funds {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %.2f%% |\n",
			f.ID, f.Name, f.Symbol, common.FormatMoney(f.Value), common.FormatSignedPct(f.Change), f.TER)
	}
	return sb.String()
}

// formatInsights formats fund insights as markdown
func formatInsights(in *models.FundInsights) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Fund Insights: %s\n\n", in.FundID)

	ta := in.TechnicalAnalysis
	sb.WriteString("## Technical Analysis\n\n")
	fmt.Fprintf(&sb, "- **Trend:** %s\n", ta.Trend)
	fmt.Fprintf(&sb, "- **Volatility:** %.4f\n", ta.Volatility)
	fmt.Fprintf(&sb, "- **Momentum:** %s (RSI %s)\n", ta.Momentum, ta.RSISignal)
	fmt.Fprintf(&sb, "- **Crossover:** %s\n\n", ta.Crossover)

	ra := in.RiskAssessment
	sb.WriteString("## Risk\n\n")
	fmt.Fprintf(&sb, "- **Risk Level:** %s\n", ra.RiskLevel)
	fmt.Fprintf(&sb, "- **Sharpe Ratio:** %.2f\n", ra.SharpeRatio)
	fmt.Fprintf(&sb, "- **Max Drawdown:** %s\n\n", common.FormatPct(ra.MaxDrawdown))

	ei := in.EnvironmentalImpact
	sb.WriteString("## Environmental Impact\n\n")
	fmt.Fprintf(&sb, "- **Carbon Offset:** %.0f t/yr\n", ei.CarbonOffset)
	fmt.Fprintf(&sb, "- **Offset Efficiency:** %s\n", common.FormatPct(ei.Efficiency))
	fmt.Fprintf(&sb, "- **Carbon Intensity:** %.0f gCO2/kWh\n\n", ei.Intensity)

	esg := in.EsgAnalysis
	sb.WriteString("## ESG\n\n")
	sb.WriteString("| Total | Environmental | Social | Governance |\n")
	sb.WriteString("|-------|---------------|--------|------------|\n")
	fmt.Fprintf(&sb, "| %.0f | %.0f | %.0f | %.0f |\n\n", esg.TotalScore, esg.Environmental, esg.Social, esg.Governance)

	mp := in.MarketPosition
	sb.WriteString("## Market Position\n\n")
	fmt.Fprintf(&sb, "- **Market Share:** %s\n", common.FormatPct(mp.MarketShare))
	fmt.Fprintf(&sb, "- **Peer Ranking:** %d\n", mp.PeerRanking)
	fmt.Fprintf(&sb, "- **Sentiment:** %+.2f\n", mp.Sentiment)
	return sb.String()
}

// formatPrediction formats a fund prediction as markdown
func formatPrediction(p *models.FundPrediction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Prediction: %s\n\n", p.FundID)
	fmt.Fprintf(&sb, "**Action:** %s\n\n", p.Output.RecommendedAction)
	fmt.Fprintf(&sb, "- **Last Close:** %.2f\n", p.Input.HistoricalPrices.Last())
	fmt.Fprintf(&sb, "- **Predicted Price:** %.2f\n", p.Output.PredictedPrice)
	fmt.Fprintf(&sb, "- **Confidence:** %.2f\n", p.Output.Confidence)
	fmt.Fprintf(&sb, "- **Risk Score:** %.1f\n\n", p.Output.RiskScore)

	sb.WriteString("## Inputs\n\n")
	fmt.Fprintf(&sb, "- Volatility: %.4f\n", p.Input.Volatility)
	fmt.Fprintf(&sb, "- Market Sentiment: %+.2f\n", p.Input.MarketSentiment)
	fmt.Fprintf(&sb, "- Environmental Score: %.0f\n", p.Input.EnvironmentalScore)
	return sb.String()
}

// formatImpact formats an environmental impact result as markdown
func formatImpact(i *models.EnvironmentalImpact) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Environmental Impact: %s\n\n", i.FundID)
	fmt.Fprintf(&sb, "- **Impact Score:** %.1f / 100\n", i.ImpactScore)
	fmt.Fprintf(&sb, "- **Sustainability Rating:** %s\n", i.SustainabilityRating)
	fmt.Fprintf(&sb, "- **Projected Annual Offset:** %.0f t\n", i.ProjectedAnnualOffset)
	fmt.Fprintf(&sb, "- **Recommended Allocation:** %s\n", common.FormatPct(i.RecommendedAllocation))
	return sb.String()
}

// formatRecommendation formats a portfolio recommendation as markdown
func formatRecommendation(rec *models.PortfolioRecommendation) string {
	var sb strings.Builder
	sb.WriteString("# Portfolio Recommendation\n\n")
	writeAllocations(&sb, rec)

	ra := rec.RiskAssessment
	sb.WriteString("## Risk Assessment\n\n")
	fmt.Fprintf(&sb, "- **Portfolio Risk (daily VaR):** %s\n", common.FormatPct(ra.PortfolioRisk))
	fmt.Fprintf(&sb, "- **Diversification Score:** %.1f\n", ra.DiversificationScore)
	fmt.Fprintf(&sb, "- **ESG Score:** %.1f\n\n", ra.EsgScore)

	if rec.RebalancingNeeded {
		sb.WriteString("## Rebalancing Needed\n\n")
		for _, r := range rec.RebalancingReasons {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
	} else {
		sb.WriteString("No rebalancing needed.\n")
	}
	return sb.String()
}

func writeAllocations(sb *strings.Builder, rec *models.PortfolioRecommendation) {
	withAmount := rec.TotalAmount != nil
	if withAmount {
		sb.WriteString("| Fund | Allocation | Amount |\n")
		sb.WriteString("|------|------------|--------|\n")
	} else {
		sb.WriteString("| Fund | Allocation |\n")
		sb.WriteString("|------|------------|\n")
	}
	for _, a := range rec.OptimalAllocation {
		if withAmount && a.Amount != nil {
			fmt.Fprintf(sb, "| %s | %s | $%s |\n", a.FundID, common.FormatPct(a.Allocation), a.Amount.StringFixed(2))
			continue
		}
		fmt.Fprintf(sb, "| %s | %s |\n", a.FundID, common.FormatPct(a.Allocation))
	}
	if withAmount {
		fmt.Fprintf(sb, "| **Total** | | **$%s** |\n", rec.TotalAmount.StringFixed(2))
	}
	sb.WriteString("\n")
}

// formatComparison formats a fund comparison as markdown
func formatComparison(cmp *models.FundComparison) string {
	var sb strings.Builder
	sb.WriteString("# Fund Comparison\n\n")
	sb.WriteString("| Fund | Annual Vol | Sharpe | ESG | Action | Impact | Rating |\n")
	sb.WriteString("|------|------------|--------|-----|--------|--------|--------|\n")
	for _, c := range cmp.Funds {
		fmt.Fprintf(&sb, "| %s | %s | %.2f | %.0f | %s | %.1f | %s |\n",
			c.Fund.Name,
			common.FormatPct(c.Metrics.Volatility.Annual),
			c.Metrics.Risk.SharpeRatio,
			c.Metrics.EsgScores.Total,
			c.Prediction.RecommendedAction,
			c.Impact.ImpactScore,
			c.Impact.SustainabilityRating,
		)
	}
	sb.WriteString("\n")

	if cmp.Recommendation != nil {
		sb.WriteString("## Joint Allocation\n\n")
		writeAllocations(&sb, cmp.Recommendation)
	}
	return sb.String()
}

// formatOverview formats the investments overview as markdown
func formatOverview(o *models.PortfolioOverview) string {
	var sb strings.Builder
	sb.WriteString("# Portfolio Overview\n\n")
	if len(o.Holdings) == 0 {
		sb.WriteString("No investments recorded.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "- **Total Value:** $%s\n", o.TotalValue.StringFixed(2))
	fmt.Fprintf(&sb, "- **Annual Carbon Offset:** %.0f t\n\n", o.TotalCarbonOffset)

	sb.WriteString("| Fund | Invested | Weight | Action | Impact | Rating |\n")
	sb.WriteString("|------|----------|--------|--------|--------|--------|\n")
	for _, h := range o.Holdings {
		fmt.Fprintf(&sb, "| %s | $%s | %s | %s | %.1f | %s |\n",
			h.FundName,
			h.Invested.StringFixed(2),
			common.FormatPct(h.Weight),
			h.Prediction.RecommendedAction,
			h.Impact.ImpactScore,
			h.Impact.SustainabilityRating,
		)
	}
	sb.WriteString("\n")

	if rec := o.Recommendation; rec != nil {
		if rec.RebalancingNeeded {
			sb.WriteString("## Rebalancing Needed\n\n")
			for _, r := range rec.RebalancingReasons {
				fmt.Fprintf(&sb, "- %s\n", r)
			}
		} else {
			sb.WriteString("No rebalancing needed.\n")
		}
	}
	return sb.String()
}
