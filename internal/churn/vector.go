package churn

// VectorLength is the fixed number of entries in a feature vector. The
// classifier is trained against this exact layout; changing the order or
// length invalidates every previously trained model artifact.
const VectorLength = 15

// FeatureNames lists the vector entries in scoring order, as exposed by the
// model-info endpoint.
var FeatureNames = []string{
	"avg_data_usage_pct",
	"data_usage_trend",
	"avg_voice_usage_pct",
	"avg_days_inactive",
	"avg_signal_strength",
	"total_dropped_calls",
	"coverage_issues_count",
	"complaint_count",
	"negative_sentiment_count",
	"avg_nps_score",
	"tenure_months",
	"monthly_fee",
	"payment_issues_count",
	"is_premium_segment",
	"contract_months_remaining",
}

// Vectorize encodes a defaulted record as an ordered numeric vector. No
// clamping happens here: out-of-range raw inputs propagate as out-of-range
// vector entries.
func Vectorize(r Record) []float64 {
	premium := 0.0
	if r.CustomerSegment == SegmentPremium {
		premium = 1.0
	}
	return []float64{
		r.AvgDataUsagePct / 100,
		r.DataUsageTrend,
		r.AvgVoiceUsagePct / 100,
		float64(r.AvgDaysInactive),
		(float64(r.AvgSignalStrength) + 110) / 60,
		float64(r.TotalDroppedCalls),
		float64(r.CoverageIssuesCount),
		float64(r.ComplaintCount),
		float64(r.NegativeSentimentCount),
		r.AvgNPSScore / 10,
		float64(r.TenureMonths) / 60,
		r.MonthlyFee / 100,
		float64(r.PaymentIssuesCount),
		premium,
		float64(r.ContractMonthsRemaining) / 24,
	}
}
