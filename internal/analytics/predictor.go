package analytics

import (
	"context"

	"github.com/bobmcallan/greenvest/internal/models"
)

// Action thresholds, evaluated in order
const (
	buyConfidence  = 0.7
	buyMaxRisk     = 40.0
	sellMinRisk    = 70.0
	sellConfidence = 0.3
)

// Predictor produces a bounded stochastic price forecast with scores and an action.
type Predictor struct {
	noise       NoiseSource
	clampScores bool
}

// NewPredictor creates a Predictor. With clampScores false the confidence and risk
// score are returned exactly as computed, even outside their nominal ranges.
func NewPredictor(noise NoiseSource, clampScores bool) *Predictor {
	return &Predictor{noise: noise, clampScores: clampScores}
}

// Predict forecasts the next price from the last historical close.
func (p *Predictor) Predict(ctx context.Context, input models.PredictionInput) (*models.PredictionOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	lastPrice := input.HistoricalPrices.Last()
	priceChange := (2*p.noise.Float64() - 1) * input.Volatility

	confidence := Confidence(input.EnvironmentalScore, input.Volatility, input.MarketSentiment)
	riskScore := RiskScore(input.EnvironmentalScore, input.Volatility, input.MarketSentiment)
	action := ClassifyAction(confidence, riskScore)

	if p.clampScores {
		confidence = clamp(confidence, 0, 1)
		riskScore = clamp(riskScore, 0, 100)
	}

	return &models.PredictionOutput{
		PredictedPrice:    lastPrice * (1 + priceChange),
		Confidence:        confidence,
		RiskScore:         riskScore,
		RecommendedAction: action,
	}, nil
}

// Confidence = 0.5 + 0.2*(E/100) + 0.2*(1-volatility) + 0.1*(sentiment+1).
// Unclamped; its maximum on valid inputs is 1.1.
func Confidence(environmentalScore, volatility, sentiment float64) float64 {
	return 0.5 +
		0.2*(environmentalScore/100) +
		0.2*(1-volatility) +
		0.1*(sentiment+1)
}

// RiskScore = 40*volatility + 30*(1-E/100) + 30*(1-(sentiment+1)/2). Unclamped.
func RiskScore(environmentalScore, volatility, sentiment float64) float64 {
	return 40*volatility +
		30*(1-environmentalScore/100) +
		30*(1-(sentiment+1)/2)
}

// ClassifyAction maps scores to an action, first match wins:
// Buy when confidence > 0.7 and risk < 40, Sell when risk > 70 or confidence < 0.3,
// otherwise Hold.
func ClassifyAction(confidence, riskScore float64) models.Action {
	switch {
	case confidence > buyConfidence && riskScore < buyMaxRisk:
		return models.ActionBuy
	case riskScore > sellMinRisk || confidence < sellConfidence:
		return models.ActionSell
	default:
		return models.ActionHold
	}
}
