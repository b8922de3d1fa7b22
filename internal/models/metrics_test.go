package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEsgScores_TotalIsRoundedMean(t *testing.T) {
	tests := []struct {
		name      string
		e, s, g   float64
		wantTotal float64
	}{
		{"exact mean", 90, 80, 70, 80},
		{"80.33 rounds down", 80, 80, 81, 80},
		{"80.67 rounds up", 80, 81, 81, 81},
		{"85.5 rounds half away from zero", 85, 85, 86.5, 86},
		{"zeros", 0, 0, 0, 0},
		{"maximum", 100, 100, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			esg := NewEsgScores(tt.e, tt.s, tt.g)
			assert.Equal(t, tt.wantTotal, esg.Total)
			assert.Equal(t, tt.e, esg.Environmental)
			assert.Equal(t, tt.s, esg.Social)
			assert.Equal(t, tt.g, esg.Governance)
		})
	}
}

func TestPriceHistory_Closes(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	h := &PriceHistory{
		FundID: "wind-energy",
		Points: []PricePoint{
			{Date: day, Close: 18.23},
			{Date: day.AddDate(0, 0, 1), Close: 18.15},
			{Date: day.AddDate(0, 0, 2), Close: 18.30},
		},
	}

	closes := h.Closes()
	assert.Equal(t, PriceSeries{18.23, 18.15, 18.30}, closes)
	assert.Equal(t, 18.30, closes.Last())
	assert.Len(t, h.Dates(), 3)

	var nilHistory *PriceHistory
	assert.Nil(t, nilHistory.Closes())
	assert.Equal(t, 0.0, PriceSeries(nil).Last())
}

func TestFundMetrics_JSONFieldNames(t *testing.T) {
	m := FundMetrics{
		FundID:    "solar-power",
		EsgScores: NewEsgScores(90, 80, 85),
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "esg_scores")
	assert.Contains(t, raw, "technical_indicators")
	assert.Contains(t, raw, "risk_analysis")
	assert.Equal(t, 85.0, raw["esg_scores"].(map[string]any)["total"])
}
