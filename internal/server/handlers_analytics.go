package server

import (
	"net/http"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/models"
)

type movingAverageRequest struct {
	Prices []float64 `json:"prices" validate:"required,min=1"`
	Period int       `json:"period"`
}

type volatilityRequest struct {
	Prices []float64 `json:"prices" validate:"required,min=2"`
}

type sharpeRequest struct {
	Returns      []float64 `json:"returns" validate:"required,min=1"`
	RiskFreeRate *float64  `json:"risk_free_rate,omitempty"`
}

// handleAnalyticsMovingAverage handles POST /api/analytics/moving-average.
func (s *Server) handleAnalyticsMovingAverage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req movingAverageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	values, err := analytics.MovingAverageValues(req.Prices, req.Period)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"period": req.Period,
		"values": values,
	})
}

// handleAnalyticsVolatility handles POST /api/analytics/volatility.
func (s *Server) handleAnalyticsVolatility(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req volatilityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	vol, err := analytics.Volatility(req.Prices)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]float64{
		"volatility": vol,
		"annualized": analytics.Annualize(vol, s.app.Config.Analytics.AnnualizationDays),
	})
}

// handleAnalyticsSharpe handles POST /api/analytics/sharpe.
// risk_free_rate defaults to the configured rate.
func (s *Server) handleAnalyticsSharpe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req sharpeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	rf := s.app.Config.Analytics.RiskFreeRate
	if req.RiskFreeRate != nil {
		rf = *req.RiskFreeRate
	}
	ratio, err := analytics.SharpeRatio(req.Returns, rf)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]float64{
		"sharpe_ratio":   ratio,
		"risk_free_rate": rf,
	})
}

// handleAnalyticsPredict handles POST /api/analytics/predict.
func (s *Server) handleAnalyticsPredict(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var input models.PredictionInput
	if !DecodeJSON(w, r, &input) {
		return
	}
	out, err := s.app.Predictor.Predict(r.Context(), input)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	s.metrics.RecordAction(out.RecommendedAction)
	WriteJSON(w, http.StatusOK, out)
}

// handleAnalyticsImpact handles POST /api/analytics/impact.
func (s *Server) handleAnalyticsImpact(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var carbon models.CarbonMetrics
	if !DecodeJSON(w, r, &carbon) {
		return
	}
	impact, err := s.app.Impact.Analyze(carbon)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, impact)
}
