package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsMovingAverage(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/analytics/moving-average", jsonBody(t, map[string]interface{}{
		"prices": []float64{1, 2, 3, 4, 5},
		"period": 3,
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []interface{}{2.0, 3.0, 4.0}, decode(t, rec)["values"])
}

func TestAnalyticsVolatility_Flat(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/analytics/volatility", jsonBody(t, map[string]interface{}{
		"prices": []float64{5, 5, 5},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, 0.0, resp["volatility"])
	assert.Equal(t, 0.0, resp["annualized"])
}

func TestAnalyticsSharpe(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/analytics/sharpe", jsonBody(t, map[string]interface{}{
		"returns":        []float64{0.01, 0.03},
		"risk_free_rate": 0.0,
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// mean 0.02, population sd 0.01
	assert.InDelta(t, 2.0, decode(t, rec)["sharpe_ratio"], 1e-9)
}

func TestAnalyticsSharpe_DefaultRate(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/analytics/sharpe", jsonBody(t, map[string]interface{}{
		"returns": []float64{0.01, 0.03},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, 0.02, resp["risk_free_rate"])
	assert.InDelta(t, 0.0, resp["sharpe_ratio"], 1e-9)
}

func TestAnalytics_Errors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{"ma period too long", "/api/analytics/moving-average", map[string]interface{}{"prices": []float64{1, 2}, "period": 3}, http.StatusBadRequest, "invalid_argument"},
		{"ma no prices", "/api/analytics/moving-average", map[string]interface{}{"period": 3}, http.StatusBadRequest, "invalid_argument"},
		{"volatility one price", "/api/analytics/volatility", map[string]interface{}{"prices": []float64{5}}, http.StatusBadRequest, "invalid_argument"},
		{"volatility negative price", "/api/analytics/volatility", map[string]interface{}{"prices": []float64{5, -1}}, http.StatusBadRequest, "invalid_argument"},
		{"sharpe empty", "/api/analytics/sharpe", map[string]interface{}{"returns": []float64{}}, http.StatusBadRequest, "invalid_argument"},
		{"sharpe constant", "/api/analytics/sharpe", map[string]interface{}{"returns": []float64{0.01, 0.01}}, http.StatusUnprocessableEntity, "numeric_degenerate"},
		{"predict no prices", "/api/analytics/predict", map[string]interface{}{"volatility": 0.1}, http.StatusBadRequest, "invalid_argument"},
		{"predict volatility out of range", "/api/analytics/predict", map[string]interface{}{"historical_prices": []float64{10}, "volatility": 2}, http.StatusBadRequest, "invalid_argument"},
		{"impact efficiency out of range", "/api/analytics/impact", map[string]interface{}{"annual_offset": 100, "offset_efficiency": 1.5}, http.StatusBadRequest, "invalid_argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, tt.path, jsonBody(t, tt.body))
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decode(t, rec)["code"])
		})
	}
}

func TestAnalytics_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/analytics/volatility", bytesReader("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsPredict(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/analytics/predict", jsonBody(t, map[string]interface{}{
		"historical_prices":   []float64{100, 101, 102},
		"volatility":          0.05,
		"volume":              1000000,
		"market_sentiment":    0.5,
		"environmental_score": 90,
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode(t, rec)
	// 0.5 + 0.18 + 0.19 + 0.15 = 1.02, clamped
	assert.Equal(t, 1.0, resp["confidence"])
	assert.Equal(t, "Buy", resp["recommended_action"])
	assert.InDelta(t, 102, resp["predicted_price"], 102*0.05+1e-9)
}

func TestAnalyticsImpact(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/analytics/impact", jsonBody(t, map[string]interface{}{
		"annual_offset":     5000,
		"offset_efficiency": 1.0,
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode(t, rec)
	assert.Equal(t, 100.0, resp["impact_score"])
	assert.Equal(t, "Excellent", resp["sustainability_rating"])
	assert.InDelta(t, 0.3, resp["recommended_allocation"], 1e-12)
}
