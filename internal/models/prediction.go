package models

import "time"

// Action is a discrete trading recommendation
type Action string

const (
	ActionBuy  Action = "Buy"
	ActionHold Action = "Hold"
	ActionSell Action = "Sell"
)

// PredictionInput holds the features fed to the price predictor
type PredictionInput struct {
	HistoricalPrices   PriceSeries `json:"historical_prices" validate:"required,min=1,dive,gt=0"`
	Volatility         float64     `json:"volatility" validate:"gte=0,lte=1"`
	Volume             float64     `json:"volume" validate:"gte=0"`
	MarketSentiment    float64     `json:"market_sentiment" validate:"gte=-1,lte=1"`
	EnvironmentalScore float64     `json:"environmental_score" validate:"gte=0,lte=100"`
}

// PredictionOutput is the predictor result.
// Confidence is nominally 0..1 and RiskScore 0..100.
type PredictionOutput struct {
	PredictedPrice    float64 `json:"predicted_price"`
	Confidence        float64 `json:"confidence"`
	RiskScore         float64 `json:"risk_score"`
	RecommendedAction Action  `json:"recommended_action"`
}

// FundPrediction pairs a fund's prediction with the input it was built from
type FundPrediction struct {
	FundID      string           `json:"fund_id"`
	Input       PredictionInput  `json:"input"`
	Output      PredictionOutput `json:"output"`
	GeneratedAt time.Time        `json:"generated_at"`
}
