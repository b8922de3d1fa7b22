package models

// SustainabilityRating buckets offset efficiency
type SustainabilityRating string

const (
	RatingExcellent SustainabilityRating = "Excellent"
	RatingGood      SustainabilityRating = "Good"
	RatingFair      SustainabilityRating = "Fair"
)

// EnvironmentalImpact is the result of analysing a fund's carbon metrics
type EnvironmentalImpact struct {
	FundID                string               `json:"fund_id,omitempty"`
	ImpactScore           float64              `json:"impact_score"` // 0..100
	SustainabilityRating  SustainabilityRating `json:"sustainability_rating"`
	ProjectedAnnualOffset float64              `json:"projected_annual_offset"`
	RecommendedAllocation float64              `json:"recommended_allocation"` // fraction, at most 0.3
}
