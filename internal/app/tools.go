package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createListFundsTool(), handleListFunds(a.FundService, logger))
	s.AddTool(createGetFundInsightsTool(), handleGetFundInsights(a.FundService, logger))
	s.AddTool(createPredictFundTool(), handlePredictFund(a.FundService, logger))
	s.AddTool(createAnalyzeImpactTool(), handleAnalyzeImpact(a.FundService, logger))
	s.AddTool(createRecommendPortfolioTool(), handleRecommendPortfolio(a.PortfolioService, logger))
	s.AddTool(createCompareFundsTool(), handleCompareFunds(a.PortfolioService, logger))
	s.AddTool(createAddInvestmentTool(), handleAddInvestment(a.InvestmentService, logger))
	s.AddTool(createGetPortfolioOverviewTool(), handleGetPortfolioOverview(a.InvestmentService, logger))
}

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the GreenVest server version and status. Use this to verify connectivity."),
	)
}

// createListFundsTool returns the list_funds tool definition
func createListFundsTool() mcp.Tool {
	return mcp.NewTool("list_funds",
		mcp.WithDescription("List the green funds in the catalogue with symbol, value, daily change and expense ratio."),
	)
}

// createGetFundInsightsTool returns the get_fund_insights tool definition
func createGetFundInsightsTool() mcp.Tool {
	return mcp.NewTool("get_fund_insights",
		mcp.WithDescription("Get technical, risk, environmental, ESG and market insights for one fund."),
		mcp.WithString("fund_id",
			mcp.Required(),
			mcp.Description("Fund id (e.g., 'wind-energy', 'solar-power')"),
		),
	)
}

// createPredictFundTool returns the predict_fund tool definition
func createPredictFundTool() mcp.Tool {
	return mcp.NewTool("predict_fund",
		mcp.WithDescription("Forecast the next price of a fund with confidence, risk score and a Buy/Hold/Sell action."),
		mcp.WithString("fund_id",
			mcp.Required(),
			mcp.Description("Fund id (e.g., 'wind-energy')"),
		),
	)
}

// createAnalyzeImpactTool returns the analyze_impact tool definition
func createAnalyzeImpactTool() mcp.Tool {
	return mcp.NewTool("analyze_impact",
		mcp.WithDescription("Score a fund's environmental impact from its carbon offset and efficiency, with a sustainability rating and suggested allocation."),
		mcp.WithString("fund_id",
			mcp.Required(),
			mcp.Description("Fund id (e.g., 'recycling')"),
		),
	)
}

// createRecommendPortfolioTool returns the recommend_portfolio tool definition
func createRecommendPortfolioTool() mcp.Tool {
	return mcp.NewTool("recommend_portfolio",
		mcp.WithDescription("Recommend an inverse-risk allocation across funds, optionally splitting an investment amount."),
		mcp.WithArray("fund_ids",
			mcp.WithStringItems(),
			mcp.Required(),
			mcp.Description("Fund ids to allocate across (e.g., ['wind-energy', 'solar-power'])"),
		),
		mcp.WithString("amount",
			mcp.Description("Amount to invest as a decimal string (e.g., '10000.00')"),
		),
	)
}

// createCompareFundsTool returns the compare_funds tool definition
func createCompareFundsTool() mcp.Tool {
	return mcp.NewTool("compare_funds",
		mcp.WithDescription("Compare funds side by side on risk, ESG, prediction and impact, with a joint allocation."),
		mcp.WithArray("fund_ids",
			mcp.WithStringItems(),
			mcp.Required(),
			mcp.Description("Fund ids to compare"),
		),
	)
}

// createAddInvestmentTool returns the add_investment tool definition
func createAddInvestmentTool() mcp.Tool {
	return mcp.NewTool("add_investment",
		mcp.WithDescription("Record an investment in a catalogue fund. The amount is rounded to cents."),
		mcp.WithString("fund_id",
			mcp.Required(),
			mcp.Description("Fund id, e.g. wind-energy"),
		),
		mcp.WithString("amount",
			mcp.Required(),
			mcp.Description("Amount invested as a decimal string, e.g. 250.00"),
		),
	)
}

// createGetPortfolioOverviewTool returns the get_portfolio_overview tool definition
func createGetPortfolioOverviewTool() mcp.Tool {
	return mcp.NewTool("get_portfolio_overview",
		mcp.WithDescription("Summarise recorded investments: total value, carbon offset, per-fund prediction and impact, and a rebalancing check."),
	)
}
