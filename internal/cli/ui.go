package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/models"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	actionStyles = map[models.Action]lipgloss.Style{
		models.ActionBuy:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		models.ActionHold: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
		models.ActionSell: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
)

// render writes v as indented JSON or as the table view
func render(w io.Writer, format string, v interface{}, view func() string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, view())
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})
}

// keyValues renders label/value pairs as a two-column table
func keyValues(pairs ...[2]string) string {
	t := newTable()
	for _, p := range pairs {
		t.Row(p[0], p[1])
	}
	return t.String()
}

func fundsTable(funds []models.Fund) string {
	t := newTable("ID", "Name", "Symbol", "Value", "Change", "TER")
	for _, f := range funds {
		t.Row(f.ID, f.Name, f.Symbol, common.FormatMoney(f.Value), common.FormatSignedPct(f.Change), fmt.Sprintf("%.2f%%", f.TER))
	}
	return t.String()
}

func insightsView(in *models.FundInsights) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Insights: "+in.FundID) + "\n")

	ta := in.TechnicalAnalysis
	sb.WriteString(sectionStyle.Render("Technical") + "\n")
	sb.WriteString(keyValues(
		[2]string{"Trend", ta.Trend},
		[2]string{"Volatility", fmt.Sprintf("%.4f", ta.Volatility)},
		[2]string{"Momentum", ta.Momentum},
		[2]string{"RSI", ta.RSISignal},
		[2]string{"Crossover", ta.Crossover},
	) + "\n")

	ra := in.RiskAssessment
	sb.WriteString(sectionStyle.Render("Risk") + "\n")
	sb.WriteString(keyValues(
		[2]string{"Level", ra.RiskLevel},
		[2]string{"Sharpe", fmt.Sprintf("%.2f", ra.SharpeRatio)},
		[2]string{"Max drawdown", common.FormatPct(ra.MaxDrawdown)},
	) + "\n")

	esg := in.EsgAnalysis
	sb.WriteString(sectionStyle.Render("ESG") + "\n")
	t := newTable("Total", "Environmental", "Social", "Governance")
	t.Row(fmt.Sprintf("%.0f", esg.TotalScore), fmt.Sprintf("%.0f", esg.Environmental), fmt.Sprintf("%.0f", esg.Social), fmt.Sprintf("%.0f", esg.Governance))
	sb.WriteString(t.String() + "\n")

	ei := in.EnvironmentalImpact
	mp := in.MarketPosition
	sb.WriteString(sectionStyle.Render("Impact & Market") + "\n")
	sb.WriteString(keyValues(
		[2]string{"Carbon offset", fmt.Sprintf("%.0f t/yr", ei.CarbonOffset)},
		[2]string{"Efficiency", common.FormatPct(ei.Efficiency)},
		[2]string{"Intensity", fmt.Sprintf("%.0f gCO2/kWh", ei.Intensity)},
		[2]string{"Market share", common.FormatPct(mp.MarketShare)},
		[2]string{"Peer ranking", fmt.Sprintf("%d", mp.PeerRanking)},
		[2]string{"Sentiment", fmt.Sprintf("%+.2f", mp.Sentiment)},
	))
	return sb.String()
}

func predictionView(p *models.FundPrediction) string {
	action := string(p.Output.RecommendedAction)
	if style, ok := actionStyles[p.Output.RecommendedAction]; ok {
		action = style.Render(action)
	}
	last := p.Input.HistoricalPrices.Last()
	return titleStyle.Render("Prediction: "+p.FundID) + "\n" + keyValues(
		[2]string{"Action", action},
		[2]string{"Last close", fmt.Sprintf("%.2f", last)},
		[2]string{"Predicted", fmt.Sprintf("%.2f", p.Output.PredictedPrice)},
		[2]string{"Change", common.FormatSignedMoney(p.Output.PredictedPrice - last)},
		[2]string{"Confidence", fmt.Sprintf("%.2f", p.Output.Confidence)},
		[2]string{"Risk score", fmt.Sprintf("%.1f", p.Output.RiskScore)},
	)
}

func impactView(i *models.EnvironmentalImpact) string {
	return titleStyle.Render("Impact: "+i.FundID) + "\n" + keyValues(
		[2]string{"Impact score", fmt.Sprintf("%.1f / 100", i.ImpactScore)},
		[2]string{"Rating", string(i.SustainabilityRating)},
		[2]string{"Projected offset", fmt.Sprintf("%.0f t", i.ProjectedAnnualOffset)},
		[2]string{"Allocation", common.FormatPct(i.RecommendedAllocation)},
	)
}

func recommendationView(rec *models.PortfolioRecommendation) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Portfolio Recommendation") + "\n")

	headers := []string{"Fund", "Allocation"}
	if rec.TotalAmount != nil {
		headers = append(headers, "Amount")
	}
	t := newTable(headers...)
	for _, a := range rec.OptimalAllocation {
		row := []string{a.FundID, common.FormatPct(a.Allocation)}
		if rec.TotalAmount != nil && a.Amount != nil {
			row = append(row, "$"+a.Amount.StringFixed(2))
		}
		t.Row(row...)
	}
	if rec.TotalAmount != nil {
		t.Row("Total", "", "$"+rec.TotalAmount.StringFixed(2))
	}
	sb.WriteString(t.String() + "\n")

	ra := rec.RiskAssessment
	sb.WriteString(keyValues(
		[2]string{"Portfolio risk", common.FormatPct(ra.PortfolioRisk)},
		[2]string{"Diversification", fmt.Sprintf("%.1f", ra.DiversificationScore)},
		[2]string{"ESG", fmt.Sprintf("%.1f", ra.EsgScore)},
	) + "\n")

	if rec.RebalancingNeeded {
		sb.WriteString(sectionStyle.Render("Rebalancing needed") + "\n")
		for _, r := range rec.RebalancingReasons {
			sb.WriteString("  - " + r + "\n")
		}
	} else {
		sb.WriteString(mutedStyle.Render("No rebalancing needed"))
	}
	return sb.String()
}
