package plans

import "strings"

// Tier constants (single source of truth)
const (
	TierNone       = "none"
	TierFreeTrial  = "free_trial"
	TierBasic      = "basic"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// Entitlement durations in days. The trial is a week; every paid tier runs a
// 30-day window that a Stripe renewal re-activates.
const (
	TrialDays = 7
	PaidDays  = 30
)

// IsPaidTier reports whether tier names one of the purchasable tiers.
func IsPaidTier(tier string) bool {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case TierBasic, TierPro, TierEnterprise:
		return true
	}
	return false
}

// PlanTier returns the effective tier for a catalog plan.
// Priority:
// 1. Explicit Tier stored in DB
// 2. Fallback inference by price (legacy safety net)
func PlanTier(p *Plan) string {
	if p == nil {
		return TierNone
	}

	tier := strings.ToLower(strings.TrimSpace(p.Tier))
	switch tier {
	case TierBasic, TierPro, TierEnterprise:
		return tier
	}

	return inferTierFromPrice(p.PriceEUR)
}

// inferTierFromPrice exists ONLY as a backward-compatibility fallback for
// catalog rows synced before the tier metadata key existed.
func inferTierFromPrice(priceEUR float64) string {
	switch {
	case priceEUR >= 30:
		return TierEnterprise
	case priceEUR >= 15:
		return TierPro
	default:
		return TierBasic
	}
}

// FeaturesFor lists the human-readable feature bullets shown for a tier.
// Display only, no behavioral effect.
func FeaturesFor(tier string) []string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case TierFreeTrial:
		return []string{
			"Unlimited internship browsing",
			"Unlimited auto-apply for 7 days",
			"Resume builder",
		}
	case TierBasic:
		return []string{
			"Unlimited internship browsing",
			"Unlimited auto-apply",
			"Resume builder",
		}
	case TierPro:
		return []string{
			"Everything in Basic",
			"Skill-gap analysis",
			"Resume tailoring per application",
		}
	case TierEnterprise:
		return []string{
			"Everything in Pro",
			"Interview simulation",
			"Priority support",
		}
	}
	return nil
}
