package analytics

import (
	"testing"

	"github.com/bobmcallan/greenvest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpactAnalyzer_Analyze(t *testing.T) {
	tests := []struct {
		name           string
		carbon         models.CarbonMetrics
		noise          float64
		wantScore      float64
		wantRating     models.SustainabilityRating
		wantProjected  float64
		wantAllocation float64
	}{
		{
			name:           "reference offset at full efficiency",
			carbon:         models.CarbonMetrics{AnnualOffset: 5000, OffsetEfficiency: 1.0},
			noise:          0,
			wantScore:      100,
			wantRating:     models.RatingExcellent,
			wantProjected:  5000,
			wantAllocation: 0.3,
		},
		{
			name:           "efficiency 0.8 is Good",
			carbon:         models.CarbonMetrics{AnnualOffset: 2500, OffsetEfficiency: 0.8},
			noise:          0.5,
			wantScore:      40,
			wantRating:     models.RatingGood,
			wantProjected:  2750,
			wantAllocation: 0.26,
		},
		{
			name:           "efficiency 0.6 is Fair",
			carbon:         models.CarbonMetrics{AnnualOffset: 1000, OffsetEfficiency: 0.6},
			noise:          0.25,
			wantScore:      12,
			wantRating:     models.RatingFair,
			wantProjected:  1050,
			wantAllocation: 0.22,
		},
		{
			name:           "score clamps at 100",
			carbon:         models.CarbonMetrics{AnnualOffset: 10000, OffsetEfficiency: 0.9},
			noise:          0,
			wantScore:      100,
			wantRating:     models.RatingExcellent,
			wantProjected:  10000,
			wantAllocation: 0.28,
		},
		{
			name:           "zero offset",
			carbon:         models.CarbonMetrics{AnnualOffset: 0, OffsetEfficiency: 0},
			noise:          0.9,
			wantScore:      0,
			wantRating:     models.RatingFair,
			wantProjected:  0,
			wantAllocation: 0.1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewImpactAnalyzer(FixedNoise(tt.noise)).Analyze(tt.carbon)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantScore, got.ImpactScore, 1e-9)
			assert.Equal(t, tt.wantRating, got.SustainabilityRating)
			assert.InDelta(t, tt.wantProjected, got.ProjectedAnnualOffset, 1e-9)
			assert.InDelta(t, tt.wantAllocation, got.RecommendedAllocation, 1e-12)
		})
	}
}

func TestImpactAnalyzer_ProjectedOffsetBounds(t *testing.T) {
	a := NewImpactAnalyzer(NewNoiseSource(3))
	for i := 0; i < 200; i++ {
		got, err := a.Analyze(models.CarbonMetrics{AnnualOffset: 4200, OffsetEfficiency: 0.85})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.ProjectedAnnualOffset, 4200.0)
		assert.Less(t, got.ProjectedAnnualOffset, 4200*1.2)
	}
}

func TestImpactAnalyzer_InvalidCarbon(t *testing.T) {
	a := NewImpactAnalyzer(FixedNoise(0))
	_, err := a.Analyze(models.CarbonMetrics{AnnualOffset: -1, OffsetEfficiency: 0.5})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.Analyze(models.CarbonMetrics{AnnualOffset: 100, OffsetEfficiency: 1.2})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRateSustainability(t *testing.T) {
	assert.Equal(t, models.RatingExcellent, RateSustainability(0.81))
	assert.Equal(t, models.RatingGood, RateSustainability(0.8))
	assert.Equal(t, models.RatingGood, RateSustainability(0.61))
	assert.Equal(t, models.RatingFair, RateSustainability(0.6))
}
