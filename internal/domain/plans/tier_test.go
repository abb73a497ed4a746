package plans

import "testing"

func TestPlanTier(t *testing.T) {
	cases := []struct {
		name string
		plan *Plan
		want string
	}{
		{"nil plan", nil, TierNone},
		{"explicit tier", &Plan{Tier: "pro", PriceEUR: 5}, TierPro},
		{"explicit tier wins over price", &Plan{Tier: "basic", PriceEUR: 99}, TierBasic},
		{"tier is case-insensitive", &Plan{Tier: " Enterprise "}, TierEnterprise},
		{"fallback cheap", &Plan{PriceEUR: 9.99}, TierBasic},
		{"fallback mid", &Plan{PriceEUR: 19.99}, TierPro},
		{"fallback high", &Plan{PriceEUR: 49}, TierEnterprise},
	}
	for _, tc := range cases {
		if got := PlanTier(tc.plan); got != tc.want {
			t.Errorf("%s: PlanTier = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsPaidTier(t *testing.T) {
	for _, tier := range []string{TierBasic, TierPro, TierEnterprise, "PRO", " basic "} {
		if !IsPaidTier(tier) {
			t.Errorf("IsPaidTier(%q) = false, want true", tier)
		}
	}
	for _, tier := range []string{TierFreeTrial, TierNone, "", "platinum"} {
		if IsPaidTier(tier) {
			t.Errorf("IsPaidTier(%q) = true, want false", tier)
		}
	}
}

func TestFeaturesFor(t *testing.T) {
	if got := FeaturesFor(TierPro); len(got) == 0 {
		t.Error("FeaturesFor(pro) is empty")
	}
	if got := FeaturesFor("platinum"); got != nil {
		t.Errorf("FeaturesFor(platinum) = %v, want nil", got)
	}
}
