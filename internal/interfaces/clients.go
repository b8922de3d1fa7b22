// Package interfaces defines service contracts for GreenVest
package interfaces

import (
	"context"
	"errors"

	"github.com/bobmcallan/greenvest/internal/models"
)

// ErrFundNotFound is returned for fund ids missing from the catalogue or a feed
var ErrFundNotFound = errors.New("fund not found")

// FundCatalog lists the funds GreenVest knows about
type FundCatalog interface {
	// ListFunds returns every fund in catalogue order
	ListFunds(ctx context.Context) ([]models.Fund, error)

	// GetFund returns one fund or ErrFundNotFound
	GetFund(ctx context.Context, fundID string) (*models.Fund, error)
}

// PriceSource supplies daily closes for a fund, oldest first
type PriceSource interface {
	// Name identifies the feed ("sample", "csv", "yahoo")
	Name() string

	// GetPriceHistory returns the price history or ErrFundNotFound
	GetPriceHistory(ctx context.Context, fundID string) (*models.PriceHistory, error)
}

// MetricsSource supplies raw risk, carbon, ESG and market observations for a fund
type MetricsSource interface {
	GetObservations(ctx context.Context, fundID string) (*models.FundObservations, error)
}

// PricePredictor forecasts a price and recommends an action.
// analytics.Predictor implements it; a trained model can replace it.
type PricePredictor interface {
	Predict(ctx context.Context, input models.PredictionInput) (*models.PredictionOutput, error)
}
