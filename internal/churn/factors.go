package churn

// NoFactorsMessage is returned alone when no risk predicate matches. It never
// appears alongside real factors.
const NoFactorsMessage = "No significant risk factors identified"

// maxFactors caps how many factors a single prediction reports.
const maxFactors = 5

type factorRule struct {
	match   func(Record) bool
	message string
}

// factorRules is evaluated in declaration order; the first maxFactors matches
// win. The order is part of the output contract, not a severity ranking.
var factorRules = []factorRule{
	{func(r Record) bool { return r.AvgDataUsagePct < 30 }, "Low data usage (< 30% of plan)"},
	{func(r Record) bool { return r.DataUsageTrend < -0.2 }, "Declining usage trend"},
	{func(r Record) bool { return r.AvgSignalStrength < -85 }, "Poor network signal quality"},
	{func(r Record) bool { return r.TotalDroppedCalls > 3 }, "Frequent dropped calls"},
	{func(r Record) bool { return r.CoverageIssuesCount > 0 }, "Network coverage complaints"},
	{func(r Record) bool { return r.ComplaintCount > 2 }, "Multiple support complaints"},
	{func(r Record) bool { return r.NegativeSentimentCount > 1 }, "Negative customer sentiment"},
	{func(r Record) bool { return r.AvgNPSScore < 5 }, "Low NPS score"},
	{func(r Record) bool { return r.PaymentIssuesCount > 0 }, "Payment issues"},
	{func(r Record) bool { return r.ContractMonthsRemaining < 3 }, "Contract ending soon"},
	{func(r Record) bool { return r.AvgDaysInactive > 7 }, "Extended inactivity period"},
}

// TopFactors derives the human-readable churn-risk factors for a record.
// These are hand-authored heuristics over the raw record, not model-derived
// attributions.
func TopFactors(r Record) []string {
	factors := make([]string, 0, maxFactors)
	for _, rule := range factorRules {
		if !rule.match(r) {
			continue
		}
		factors = append(factors, rule.message)
		if len(factors) == maxFactors {
			break
		}
	}
	if len(factors) == 0 {
		return []string{NoFactorsMessage}
	}
	return factors
}
