package server

import (
	"net/http"
	"strings"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/admin/refresh", s.handleAdminRefresh)

	// Funds
	mux.HandleFunc("/api/funds/", s.routeFunds)
	mux.HandleFunc("/api/funds", s.handleFundList)
	mux.HandleFunc("/api/compare", s.handleCompare)

	// Stateless analytics
	mux.HandleFunc("/api/analytics/moving-average", s.handleAnalyticsMovingAverage)
	mux.HandleFunc("/api/analytics/volatility", s.handleAnalyticsVolatility)
	mux.HandleFunc("/api/analytics/sharpe", s.handleAnalyticsSharpe)
	mux.HandleFunc("/api/analytics/predict", s.handleAnalyticsPredict)
	mux.HandleFunc("/api/analytics/impact", s.handleAnalyticsImpact)

	// Portfolio
	mux.HandleFunc("/api/portfolio/recommend", s.handlePortfolioRecommend)
	mux.HandleFunc("/api/portfolio/overview", s.handlePortfolioOverview)

	// Investments ledger
	mux.HandleFunc("/api/investments", s.handleInvestments)
}

// routeFunds dispatches /api/funds/{id}/* to the appropriate handler.
func (s *Server) routeFunds(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/funds/")
	if path == "" {
		s.handleFundList(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	subpath := ""
	if len(parts) > 1 {
		subpath = parts[1]
	}

	switch subpath {
	case "":
		s.handleFundGet(w, r, id)
	case "prices":
		s.handleFundPrices(w, r, id)
	case "metrics":
		s.handleFundMetrics(w, r, id)
	case "insights":
		s.handleFundInsights(w, r, id)
	case "prediction":
		s.handleFundPrediction(w, r, id)
	case "impact":
		s.handleFundImpact(w, r, id)
	case "chart":
		s.handleFundChart(w, r, id)
	case "moving-average":
		s.handleFundMovingAverage(w, r, id)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}
