package churn

type actionRule struct {
	when   func(Record) bool
	action string
}

func always(Record) bool { return true }

// Per-tier retention playbooks, evaluated in declaration order. Promo
// identifiers reference the retention campaign catalog.
var actionRules = map[Tier][]actionRule{
	TierHigh: {
		{always, "Immediate retention call from specialized agent"},
		{func(r Record) bool { return r.AvgSignalStrength < -85 }, "Offer network issue compensation (PROMO-006)"},
		{func(r Record) bool { return r.AvgSignalStrength < -85 }, "Schedule network assessment for customer location"},
		{always, "Offer Win-Back Special (PROMO-002) - 3 free months"},
		{always, "Escalate to retention specialist"},
	},
	TierMedium: {
		{always, "Proactive customer outreach within 7 days"},
		{func(r Record) bool { return r.AvgDataUsagePct < 30 }, "Offer Data Boost Upgrade (PROMO-003)"},
		{always, "Offer Loyalty Reward 20% discount (PROMO-001)"},
		{always, "Send personalized engagement campaign"},
	},
	TierLow: {
		{always, "Continue regular monitoring"},
		{always, "Include in loyalty program communications"},
		{always, "Offer referral incentives"},
	},
}

// Recommend builds the ordered retention action list for a tier. Unknown
// tiers fall back to the low-risk playbook. Premium customers get a device
// offer appended regardless of tier.
func Recommend(tier Tier, r Record) []string {
	rules, ok := actionRules[tier]
	if !ok {
		rules = actionRules[TierLow]
	}

	actions := make([]string, 0, len(rules)+1)
	for _, rule := range rules {
		if rule.when(r) {
			actions = append(actions, rule.action)
		}
	}

	if r.CustomerSegment == SegmentPremium {
		actions = append(actions, "Consider Premium Device Deal (PROMO-004)")
	}

	return actions
}
