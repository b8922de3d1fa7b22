package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/greenvest/internal/common"
)

// handleHealth handles GET/HEAD /api/health with snapshot cache stats.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	resp := map[string]interface{}{
		"status":       "ok",
		"price_source": s.app.PriceSource.Name(),
		"uptime":       time.Since(s.app.StartupTime).Round(time.Second).String(),
	}
	if s.app.Snapshots != nil {
		resp["snapshots"] = s.app.Snapshots.Stats()
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, common.VersionInfo())
}

// handleAdminRefresh handles POST /api/admin/refresh (non-production only).
func (s *Server) handleAdminRefresh(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Refresh endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Snapshot refresh requested via HTTP endpoint")

	warmed, err := s.app.FundService.Refresh(r.Context())
	resp := map[string]interface{}{
		"status": "ok",
		"warmed": warmed,
	}
	if err != nil {
		resp["status"] = "partial"
		resp["error"] = err.Error()
	}
	WriteJSON(w, http.StatusOK, resp)
}
