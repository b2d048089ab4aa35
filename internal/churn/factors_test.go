package churn

import (
	"reflect"
	"testing"
)

// riskyRecord trips every factor predicate at once.
func riskyRecord() Record {
	return Record{
		CustomerID:              "CUST-1",
		AvgDataUsagePct:         25,
		DataUsageTrend:          -0.3,
		AvgVoiceUsagePct:        50,
		AvgDaysInactive:         8,
		AvgSignalStrength:       -92,
		TotalDroppedCalls:       5,
		CoverageIssuesCount:     2,
		ComplaintCount:          3,
		NegativeSentimentCount:  2,
		AvgNPSScore:             4,
		TenureMonths:            12,
		MonthlyFee:              50,
		PaymentIssuesCount:      1,
		CustomerSegment:         SegmentStandard,
		ContractMonthsRemaining: 2,
	}
}

func TestTopFactors_TruncatesInDeclarationOrder(t *testing.T) {
	// More than five predicates are true here; the first five in declaration
	// order win, not the most severe ones.
	got := TopFactors(riskyRecord())
	want := []string{
		"Low data usage (< 30% of plan)",
		"Declining usage trend",
		"Poor network signal quality",
		"Frequent dropped calls",
		"Network coverage complaints",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopFactors = %v, want %v", got, want)
	}
}

func TestTopFactors_NeverMoreThanFive(t *testing.T) {
	if got := TopFactors(riskyRecord()); len(got) > 5 {
		t.Errorf("got %d factors, cap is 5", len(got))
	}
}

func TestTopFactors_Sentinel(t *testing.T) {
	// A healthy customer matches no predicate and gets exactly the sentinel.
	rec := ApplyDefaults(Features{CustomerID: "CUST-OK"})
	got := TopFactors(rec)
	if !reflect.DeepEqual(got, []string{NoFactorsMessage}) {
		t.Errorf("TopFactors = %v, want just the sentinel", got)
	}
}

func TestTopFactors_SingleMatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
		want   string
	}{
		{"low data usage", func(r *Record) { r.AvgDataUsagePct = 29.9 }, "Low data usage (< 30% of plan)"},
		{"declining trend", func(r *Record) { r.DataUsageTrend = -0.21 }, "Declining usage trend"},
		{"poor signal", func(r *Record) { r.AvgSignalStrength = -86 }, "Poor network signal quality"},
		{"dropped calls", func(r *Record) { r.TotalDroppedCalls = 4 }, "Frequent dropped calls"},
		{"coverage complaints", func(r *Record) { r.CoverageIssuesCount = 1 }, "Network coverage complaints"},
		{"support complaints", func(r *Record) { r.ComplaintCount = 3 }, "Multiple support complaints"},
		{"negative sentiment", func(r *Record) { r.NegativeSentimentCount = 2 }, "Negative customer sentiment"},
		{"low nps", func(r *Record) { r.AvgNPSScore = 4.9 }, "Low NPS score"},
		{"payment issues", func(r *Record) { r.PaymentIssuesCount = 1 }, "Payment issues"},
		{"contract ending", func(r *Record) { r.ContractMonthsRemaining = 2 }, "Contract ending soon"},
		{"inactivity", func(r *Record) { r.AvgDaysInactive = 8 }, "Extended inactivity period"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ApplyDefaults(Features{CustomerID: "CUST-X"})
			tt.mutate(&rec)
			got := TopFactors(rec)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("TopFactors = %v, want [%q]", got, tt.want)
			}
		})
	}
}

func TestTopFactors_BoundariesDoNotMatch(t *testing.T) {
	// Each predicate is a strict comparison; values exactly at the threshold
	// stay quiet.
	rec := ApplyDefaults(Features{CustomerID: "CUST-B"})
	rec.AvgDataUsagePct = 30
	rec.DataUsageTrend = -0.2
	rec.AvgSignalStrength = -85
	rec.TotalDroppedCalls = 3
	rec.ComplaintCount = 2
	rec.NegativeSentimentCount = 1
	rec.AvgNPSScore = 5
	rec.ContractMonthsRemaining = 3
	rec.AvgDaysInactive = 7

	got := TopFactors(rec)
	if !reflect.DeepEqual(got, []string{NoFactorsMessage}) {
		t.Errorf("threshold values should not match, got %v", got)
	}
}
