package churn

import (
	"reflect"
	"testing"
)

func TestRecommend_HighTier(t *testing.T) {
	rec := ApplyDefaults(Features{CustomerID: "CUST-H"})
	got := Recommend(TierHigh, rec)
	want := []string{
		"Immediate retention call from specialized agent",
		"Offer Win-Back Special (PROMO-002) - 3 free months",
		"Escalate to retention specialist",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(High) = %v, want %v", got, want)
	}
}

func TestRecommend_HighTierPoorSignal(t *testing.T) {
	rec := ApplyDefaults(Features{CustomerID: "CUST-H", AvgSignalStrength: iptr(-92)})
	got := Recommend(TierHigh, rec)
	want := []string{
		"Immediate retention call from specialized agent",
		"Offer network issue compensation (PROMO-006)",
		"Schedule network assessment for customer location",
		"Offer Win-Back Special (PROMO-002) - 3 free months",
		"Escalate to retention specialist",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(High, poor signal) = %v, want %v", got, want)
	}
}

func TestRecommend_MediumTier(t *testing.T) {
	rec := ApplyDefaults(Features{CustomerID: "CUST-M"})
	got := Recommend(TierMedium, rec)
	want := []string{
		"Proactive customer outreach within 7 days",
		"Offer Loyalty Reward 20% discount (PROMO-001)",
		"Send personalized engagement campaign",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Medium) = %v, want %v", got, want)
	}
}

func TestRecommend_MediumTierLowDataUsage(t *testing.T) {
	rec := ApplyDefaults(Features{CustomerID: "CUST-M", AvgDataUsagePct: fptr(20)})
	got := Recommend(TierMedium, rec)
	want := []string{
		"Proactive customer outreach within 7 days",
		"Offer Data Boost Upgrade (PROMO-003)",
		"Offer Loyalty Reward 20% discount (PROMO-001)",
		"Send personalized engagement campaign",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Medium, low data) = %v, want %v", got, want)
	}
}

func TestRecommend_LowTier(t *testing.T) {
	rec := ApplyDefaults(Features{CustomerID: "CUST-L"})
	got := Recommend(TierLow, rec)
	want := []string{
		"Continue regular monitoring",
		"Include in loyalty program communications",
		"Offer referral incentives",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Low) = %v, want %v", got, want)
	}
}

func TestRecommend_PremiumCrossCut(t *testing.T) {
	// The premium device offer lands last, whatever the tier.
	rec := ApplyDefaults(Features{CustomerID: "CUST-P", CustomerSegment: sptr(SegmentPremium)})

	for _, tier := range []Tier{TierHigh, TierMedium, TierLow} {
		got := Recommend(tier, rec)
		if len(got) == 0 || got[len(got)-1] != "Consider Premium Device Deal (PROMO-004)" {
			t.Errorf("Recommend(%s, Premium) missing trailing device deal: %v", tier, got)
		}
	}
}

func TestRecommend_UnknownTierFallsBackToLow(t *testing.T) {
	rec := ApplyDefaults(Features{CustomerID: "CUST-U"})
	got := Recommend(Tier("Critical"), rec)
	if !reflect.DeepEqual(got, Recommend(TierLow, rec)) {
		t.Errorf("unknown tier should use the low-risk playbook, got %v", got)
	}
}
