package churn

// Customer segments recognised by the scoring rules. Other segment values are
// accepted and treated as non-premium.
const (
	SegmentPremium  = "Premium"
	SegmentStandard = "Standard"
	SegmentBudget   = "Budget"
)

// Features is the wire-level customer record. Every field except customer_id
// is optional; absent fields are filled with their documented default by
// ApplyDefaults before any scoring logic runs.
type Features struct {
	CustomerID              string   `json:"customer_id"`
	AvgDataUsagePct         *float64 `json:"avg_data_usage_pct,omitempty"`
	DataUsageTrend          *float64 `json:"data_usage_trend,omitempty"`
	AvgVoiceUsagePct        *float64 `json:"avg_voice_usage_pct,omitempty"`
	AvgDaysInactive         *int     `json:"avg_days_inactive,omitempty"`
	AvgSignalStrength       *int     `json:"avg_signal_strength,omitempty"`
	TotalDroppedCalls       *int     `json:"total_dropped_calls,omitempty"`
	CoverageIssuesCount     *int     `json:"coverage_issues_count,omitempty"`
	ComplaintCount          *int     `json:"complaint_count,omitempty"`
	NegativeSentimentCount  *int     `json:"negative_sentiment_count,omitempty"`
	AvgNPSScore             *float64 `json:"avg_nps_score,omitempty"`
	TenureMonths            *int     `json:"tenure_months,omitempty"`
	MonthlyFee              *float64 `json:"monthly_fee,omitempty"`
	PaymentIssuesCount      *int     `json:"payment_issues_count,omitempty"`
	CustomerSegment         *string  `json:"customer_segment,omitempty"`
	ContractMonthsRemaining *int     `json:"contract_months_remaining,omitempty"`
}

// Record is a fully-defaulted customer record. Everything downstream of
// ApplyDefaults works on Record and is total: no field can be missing.
type Record struct {
	CustomerID              string
	AvgDataUsagePct         float64
	DataUsageTrend          float64
	AvgVoiceUsagePct        float64
	AvgDaysInactive         int
	AvgSignalStrength       int
	TotalDroppedCalls       int
	CoverageIssuesCount     int
	ComplaintCount          int
	NegativeSentimentCount  int
	AvgNPSScore             float64
	TenureMonths            int
	MonthlyFee              float64
	PaymentIssuesCount      int
	CustomerSegment         string
	ContractMonthsRemaining int
}

// ApplyDefaults is the single defaulting pass. Absence of a field is never an
// error; out-of-range values pass through untouched (range validation belongs
// to the request schema layer, not here).
func ApplyDefaults(f Features) Record {
	return Record{
		CustomerID:              f.CustomerID,
		AvgDataUsagePct:         floatOr(f.AvgDataUsagePct, 50),
		DataUsageTrend:          floatOr(f.DataUsageTrend, 0),
		AvgVoiceUsagePct:        floatOr(f.AvgVoiceUsagePct, 50),
		AvgDaysInactive:         intOr(f.AvgDaysInactive, 1),
		AvgSignalStrength:       intOr(f.AvgSignalStrength, -70),
		TotalDroppedCalls:       intOr(f.TotalDroppedCalls, 0),
		CoverageIssuesCount:     intOr(f.CoverageIssuesCount, 0),
		ComplaintCount:          intOr(f.ComplaintCount, 0),
		NegativeSentimentCount:  intOr(f.NegativeSentimentCount, 0),
		AvgNPSScore:             floatOr(f.AvgNPSScore, 7),
		TenureMonths:            intOr(f.TenureMonths, 12),
		MonthlyFee:              floatOr(f.MonthlyFee, 50),
		PaymentIssuesCount:      intOr(f.PaymentIssuesCount, 0),
		CustomerSegment:         strOr(f.CustomerSegment, SegmentStandard),
		ContractMonthsRemaining: intOr(f.ContractMonthsRemaining, 12),
	}
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func strOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
