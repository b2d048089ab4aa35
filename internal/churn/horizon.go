package churn

import "math"

// Bounds for the churn-horizon estimate, in days.
const (
	minHorizonDays = 7
	maxHorizonDays = 365
)

// EstimateDays estimates how many days remain until the customer likely
// churns. The contract-end cap is applied before the sentiment scale-down.
func EstimateDays(probability float64, r Record) int {
	days := int(math.Round((1 - probability) * 180))

	if r.ContractMonthsRemaining < 3 {
		if limit := r.ContractMonthsRemaining * 30; limit < days {
			days = limit
		}
	}

	if r.NegativeSentimentCount > 2 {
		days = int(float64(days) * 0.7)
	}

	if days < minHorizonDays {
		return minHorizonDays
	}
	if days > maxHorizonDays {
		return maxHorizonDays
	}
	return days
}
