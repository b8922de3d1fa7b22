package server

import (
	"net/http"

	"github.com/bobmcallan/greenvest/internal/models"
)

// handleInvestments handles GET and POST /api/investments.
func (s *Server) handleInvestments(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodGet {
		investments, err := s.app.InvestmentService.ListInvestments(r.Context())
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"investments": investments,
			"count":       len(investments),
		})
		return
	}

	var req models.InvestmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	inv, err := s.app.InvestmentService.AddInvestment(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, inv)
}

// handlePortfolioOverview handles GET /api/portfolio/overview.
func (s *Server) handlePortfolioOverview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	overview, err := s.app.InvestmentService.Overview(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, overview)
}
