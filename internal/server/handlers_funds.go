package server

import (
	"net/http"
	"strconv"

	"github.com/bobmcallan/greenvest/internal/services/fund"
)

// handleFundList handles GET /api/funds.
func (s *Server) handleFundList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	funds, err := s.app.FundService.ListFunds(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"funds": funds,
		"count": len(funds),
	})
}

func (s *Server) handleFundGet(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	f, err := s.app.FundService.GetFund(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, f)
}

func (s *Server) handleFundPrices(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	history, err := s.app.FundService.GetPriceHistory(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, history)
}

func (s *Server) handleFundMetrics(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	m, err := s.app.FundService.GetMetrics(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, m)
}

func (s *Server) handleFundInsights(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	insights, err := s.app.FundService.GetInsights(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, insights)
}

func (s *Server) handleFundPrediction(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	prediction, err := s.app.FundService.PredictFund(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	s.metrics.RecordAction(prediction.Output.RecommendedAction)
	WriteJSON(w, http.StatusOK, prediction)
}

func (s *Server) handleFundImpact(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	impact, err := s.app.FundService.AnalyzeImpact(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, impact)
}

// handleFundChart handles GET /api/funds/{id}/chart?period=N and returns a PNG.
func (s *Server) handleFundChart(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	period, ok := QueryInt(w, r, "period", fund.DefaultChartPeriod)
	if !ok {
		return
	}
	png, err := s.app.FundService.RenderChart(r.Context(), id, period)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handleFundMovingAverage handles GET /api/funds/{id}/moving-average?period=N.
func (s *Server) handleFundMovingAverage(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	period, ok := QueryInt(w, r, "period", fund.DefaultChartPeriod)
	if !ok {
		return
	}
	values, err := s.app.FundService.MovingAverage(r.Context(), id, period)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"fund_id": id,
		"period":  period,
		"values":  values,
	})
}

// handleCompare handles GET /api/compare?funds=a,b.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ids := splitList(r.URL.Query().Get("funds"))
	if len(ids) == 0 {
		WriteErrorWithCode(w, http.StatusBadRequest, "funds query parameter is required", "invalid_argument")
		return
	}
	cmp, err := s.app.PortfolioService.Compare(r.Context(), ids)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	for _, c := range cmp.Funds {
		s.metrics.RecordAction(c.Prediction.RecommendedAction)
	}
	WriteJSON(w, http.StatusOK, cmp)
}
