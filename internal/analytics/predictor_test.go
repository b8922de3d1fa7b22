package analytics

import (
	"context"
	"math"
	"testing"

	"github.com/bobmcallan/greenvest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		risk       float64
		want       models.Action
	}{
		{"confident and low risk", 0.8, 20, models.ActionBuy},
		{"low confidence sells", 0.2, 50, models.ActionSell},
		{"middle holds", 0.5, 50, models.ActionHold},
		{"confidence boundary is exclusive", 0.7, 20, models.ActionHold},
		{"risk boundary for buy is exclusive", 0.9, 40, models.ActionHold},
		{"high risk sells", 0.9, 71, models.ActionSell},
		{"risk 70 holds", 0.5, 70, models.ActionHold},
		{"confidence 0.3 holds", 0.3, 50, models.ActionHold},
		{"buy wins over sell", 0.8, 10, models.ActionBuy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAction(tt.confidence, tt.risk))
		})
	}
}

func TestConfidenceAndRiskScore(t *testing.T) {
	assert.InDelta(t, 0.956, Confidence(80, 0.02, 0), 1e-12)
	assert.InDelta(t, 21.8, RiskScore(80, 0.02, 0), 1e-12)

	assert.InDelta(t, 1.1, Confidence(100, 0, 1), 1e-12)
	assert.InDelta(t, 0.0, RiskScore(100, 0, 1), 1e-12)

	assert.InDelta(t, 0.5, Confidence(0, 1, -1), 1e-12)
	assert.InDelta(t, 100.0, RiskScore(0, 1, -1), 1e-12)
}

func predictionInput(vol, sentiment, env float64) models.PredictionInput {
	return models.PredictionInput{
		HistoricalPrices:   models.PriceSeries{18.23, 18.15, 18.30, 18.35, 18.23},
		Volatility:         vol,
		Volume:             1000000,
		MarketSentiment:    sentiment,
		EnvironmentalScore: env,
	}
}

func TestPredictor_Predict(t *testing.T) {
	tests := []struct {
		name           string
		noise          float64
		input          models.PredictionInput
		wantPrice      float64
		wantConfidence float64
		wantRisk       float64
		wantAction     models.Action
	}{
		{
			name:           "midpoint noise keeps last price",
			noise:          0.5,
			input:          predictionInput(0.02, 0, 80),
			wantPrice:      18.23,
			wantConfidence: 0.956,
			wantRisk:       21.8,
			wantAction:     models.ActionBuy,
		},
		{
			name:           "zero draw gives lower bound",
			noise:          0,
			input:          predictionInput(0.5, 0, 50),
			wantPrice:      18.23 * 0.5,
			wantConfidence: 0.8,
			wantRisk:       50,
			wantAction:     models.ActionHold,
		},
		{
			name:           "worst inputs sell",
			noise:          0.75,
			input:          predictionInput(1, -1, 0),
			wantPrice:      18.23 * 1.5,
			wantConfidence: 0.5,
			wantRisk:       100,
			wantAction:     models.ActionSell,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPredictor(FixedNoise(tt.noise), true)
			out, err := p.Predict(context.Background(), tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPrice, out.PredictedPrice, 1e-9)
			assert.InDelta(t, tt.wantConfidence, out.Confidence, 1e-9)
			assert.InDelta(t, tt.wantRisk, out.RiskScore, 1e-9)
			assert.Equal(t, tt.wantAction, out.RecommendedAction)
		})
	}
}

func TestPredictor_ClampScores(t *testing.T) {
	input := predictionInput(0, 1, 100)

	clamped, err := NewPredictor(FixedNoise(0.5), true).Predict(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1.0, clamped.Confidence)

	raw, err := NewPredictor(FixedNoise(0.5), false).Predict(context.Background(), input)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, raw.Confidence, 1e-12)

	// classification does not depend on the clamp setting
	assert.Equal(t, models.ActionBuy, clamped.RecommendedAction)
	assert.Equal(t, raw.RecommendedAction, clamped.RecommendedAction)
}

func TestPredictor_PriceChangeBoundedByVolatility(t *testing.T) {
	p := NewPredictor(NewNoiseSource(7), true)
	input := predictionInput(0.03, 0.2, 85)
	last := input.HistoricalPrices.Last()

	for i := 0; i < 500; i++ {
		out, err := p.Predict(context.Background(), input)
		require.NoError(t, err)
		change := out.PredictedPrice/last - 1
		assert.LessOrEqual(t, math.Abs(change), input.Volatility+1e-12)
		assert.Greater(t, out.PredictedPrice, 0.0)
	}
}

func TestPredictor_SeededSourcesAreReproducible(t *testing.T) {
	input := predictionInput(0.025, -0.3, 90)
	a := NewPredictor(NewNoiseSource(42), true)
	b := NewPredictor(NewNoiseSource(42), true)
	for i := 0; i < 10; i++ {
		outA, err := a.Predict(context.Background(), input)
		require.NoError(t, err)
		outB, err := b.Predict(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, outA.PredictedPrice, outB.PredictedPrice)
	}
}

func TestPredictor_InvalidInput(t *testing.T) {
	p := NewPredictor(FixedNoise(0.5), true)
	tests := []struct {
		name   string
		mutate func(*models.PredictionInput)
	}{
		{"empty prices", func(in *models.PredictionInput) { in.HistoricalPrices = nil }},
		{"non-positive price", func(in *models.PredictionInput) { in.HistoricalPrices = models.PriceSeries{18, 0} }},
		{"volatility above one", func(in *models.PredictionInput) { in.Volatility = 1.5 }},
		{"negative volatility", func(in *models.PredictionInput) { in.Volatility = -0.1 }},
		{"negative volume", func(in *models.PredictionInput) { in.Volume = -1 }},
		{"sentiment out of range", func(in *models.PredictionInput) { in.MarketSentiment = 2 }},
		{"score out of range", func(in *models.PredictionInput) { in.EnvironmentalScore = 101 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := predictionInput(0.02, 0, 80)
			tt.mutate(&input)
			_, err := p.Predict(context.Background(), input)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestPredictor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPredictor(FixedNoise(0.5), true).Predict(ctx, predictionInput(0.02, 0, 80))
	assert.ErrorIs(t, err, context.Canceled)
}
