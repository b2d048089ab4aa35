package churn

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		want        Tier
	}{
		{"certain churn", 1.0, TierHigh},
		{"exactly at high threshold", 0.60, TierHigh},
		{"just below high threshold", 0.5999, TierMedium},
		{"exactly at medium threshold", 0.30, TierMedium},
		{"just below medium threshold", 0.2999, TierLow},
		{"zero probability", 0.0, TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.probability); got != tt.want {
				t.Errorf("TierFor(%v) = %q, want %q", tt.probability, got, tt.want)
			}
		})
	}
}

func TestTierFor_AlwaysOneOfThree(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.01 {
		tier := TierFor(p)
		if tier != TierHigh && tier != TierMedium && tier != TierLow {
			t.Fatalf("TierFor(%v) = %q, not a known tier", p, tier)
		}
	}
}
