package churn

// Tier is the coarse churn-risk bucket for a probability.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

// Risk tier thresholds. Each band is inclusive on its lower edge.
const (
	HighRiskThreshold   = 0.60
	MediumRiskThreshold = 0.30
)

// TierFor buckets a churn probability, evaluated high to low.
func TierFor(probability float64) Tier {
	switch {
	case probability >= HighRiskThreshold:
		return TierHigh
	case probability >= MediumRiskThreshold:
		return TierMedium
	default:
		return TierLow
	}
}
