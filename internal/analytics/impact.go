package analytics

import (
	"math"

	"github.com/bobmcallan/greenvest/internal/models"
)

const (
	// referenceOffset is the annual offset, in tonnes, that scores 100 at full efficiency
	referenceOffset = 5000.0
	// maxOffsetGrowth bounds the projected offset growth factor
	maxOffsetGrowth = 0.2
	maxAllocation   = 0.3
	baseAllocation  = 0.1
)

// ImpactAnalyzer scores a fund's carbon metrics
type ImpactAnalyzer struct {
	noise NoiseSource
}

// NewImpactAnalyzer creates an ImpactAnalyzer drawing growth noise from noise
func NewImpactAnalyzer(noise NoiseSource) *ImpactAnalyzer {
	return &ImpactAnalyzer{noise: noise}
}

// Analyze computes the impact score, rating, projected offset and recommended allocation.
func (a *ImpactAnalyzer) Analyze(carbon models.CarbonMetrics) (*models.EnvironmentalImpact, error) {
	if err := validateStruct(carbon); err != nil {
		return nil, err
	}
	eff := carbon.OffsetEfficiency

	return &models.EnvironmentalImpact{
		ImpactScore:           math.Min(100, (carbon.AnnualOffset/referenceOffset)*100*eff),
		SustainabilityRating:  RateSustainability(eff),
		ProjectedAnnualOffset: carbon.AnnualOffset * (1 + a.noise.Float64()*maxOffsetGrowth),
		RecommendedAllocation: math.Min(maxAllocation, baseAllocation+eff*0.2),
	}, nil
}

// RateSustainability buckets efficiency: > 0.8 Excellent, > 0.6 Good, else Fair.
func RateSustainability(efficiency float64) models.SustainabilityRating {
	switch {
	case efficiency > 0.8:
		return models.RatingExcellent
	case efficiency > 0.6:
		return models.RatingGood
	default:
		return models.RatingFair
	}
}
