package server

import (
	"net/http"

	"github.com/bobmcallan/greenvest/internal/models"
)

// handlePortfolioRecommend handles POST /api/portfolio/recommend.
// The body names catalogue funds (fund_ids), supplies metrics (funds), or both.
func (s *Server) handlePortfolioRecommend(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req models.RecommendRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	rec, err := s.app.PortfolioService.Recommend(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}
