package app

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/greenvest/internal/common"
	"github.com/bobmcallan/greenvest/internal/interfaces"
	"github.com/bobmcallan/greenvest/internal/models"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("GreenVest MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleListFunds implements the list_funds tool
func handleListFunds(funds interfaces.FundService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := funds.ListFunds(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("List funds failed")
			return errorResult(fmt.Sprintf("Error listing funds: %v", err)), nil
		}
		return textResult(formatFundList(list)), nil
	}
}

// handleGetFundInsights implements the get_fund_insights tool
func handleGetFundInsights(funds interfaces.FundService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fundID, err := request.RequireString("fund_id")
		if err != nil || fundID == "" {
			return errorResult("Error: fund_id parameter is required"), nil
		}

		insights, err := funds.GetInsights(ctx, fundID)
		if err != nil {
			logger.Error().Err(err).Str("fund", fundID).Msg("Fund insights failed")
			return errorResult(fmt.Sprintf("Insights error: %v", err)), nil
		}
		return textResult(formatInsights(insights)), nil
	}
}

// handlePredictFund implements the predict_fund tool
func handlePredictFund(funds interfaces.FundService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fundID, err := request.RequireString("fund_id")
		if err != nil || fundID == "" {
			return errorResult("Error: fund_id parameter is required"), nil
		}

		prediction, err := funds.PredictFund(ctx, fundID)
		if err != nil {
			logger.Error().Err(err).Str("fund", fundID).Msg("Prediction failed")
			return errorResult(fmt.Sprintf("Prediction error: %v", err)), nil
		}
		return textResult(formatPrediction(prediction)), nil
	}
}

// handleAnalyzeImpact implements the analyze_impact tool
func handleAnalyzeImpact(funds interfaces.FundService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fundID, err := request.RequireString("fund_id")
		if err != nil || fundID == "" {
			return errorResult("Error: fund_id parameter is required"), nil
		}

		impact, err := funds.AnalyzeImpact(ctx, fundID)
		if err != nil {
			logger.Error().Err(err).Str("fund", fundID).Msg("Impact analysis failed")
			return errorResult(fmt.Sprintf("Impact error: %v", err)), nil
		}
		return textResult(formatImpact(impact)), nil
	}
}

// handleRecommendPortfolio implements the recommend_portfolio tool
func handleRecommendPortfolio(portfolios interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fundIDs := request.GetStringSlice("fund_ids", nil)
		if len(fundIDs) == 0 {
			return errorResult("Error: fund_ids parameter is required"), nil
		}

		req := models.RecommendRequest{FundIDs: fundIDs}
		if raw := request.GetString("amount", ""); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return errorResult(fmt.Sprintf("Error: invalid amount %q", raw)), nil
			}
			req.Amount = &amount
		}

		rec, err := portfolios.Recommend(ctx, req)
		if err != nil {
			logger.Error().Err(err).Strs("funds", fundIDs).Msg("Recommendation failed")
			return errorResult(fmt.Sprintf("Recommendation error: %v", err)), nil
		}
		return textResult(formatRecommendation(rec)), nil
	}
}

// handleCompareFunds implements the compare_funds tool
func handleCompareFunds(portfolios interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fundIDs := request.GetStringSlice("fund_ids", nil)
		if len(fundIDs) == 0 {
			return errorResult("Error: fund_ids parameter is required"), nil
		}

		cmp, err := portfolios.Compare(ctx, fundIDs)
		if err != nil {
			logger.Error().Err(err).Strs("funds", fundIDs).Msg("Compare failed")
			return errorResult(fmt.Sprintf("Compare error: %v", err)), nil
		}
		return textResult(formatComparison(cmp)), nil
	}
}

// handleAddInvestment implements the add_investment tool
func handleAddInvestment(investments interfaces.InvestmentService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fundID := request.GetString("fund_id", "")
		if fundID == "" {
			return errorResult("Error: fund_id parameter is required"), nil
		}
		raw := request.GetString("amount", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: invalid amount %q", raw)), nil
		}

		inv, err := investments.AddInvestment(ctx, models.InvestmentRequest{FundID: fundID, Amount: amount})
		if err != nil {
			logger.Error().Err(err).Str("fund", fundID).Msg("Add investment failed")
			return errorResult(fmt.Sprintf("Investment error: %v", err)), nil
		}
		return textResult(fmt.Sprintf("Recorded %s: $%s in %s\n", inv.ID, inv.Amount.StringFixed(2), inv.FundName)), nil
	}
}

// handleGetPortfolioOverview implements the get_portfolio_overview tool
func handleGetPortfolioOverview(investments interfaces.InvestmentService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		overview, err := investments.Overview(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Portfolio overview failed")
			return errorResult(fmt.Sprintf("Overview error: %v", err)), nil
		}
		return textResult(formatOverview(overview)), nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
