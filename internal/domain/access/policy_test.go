package access

import (
	"testing"
	"time"

	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/gate"
	"internship-app/internal/domain/plans"
	"internship-app/internal/domain/tokens"
)

func TestComputeState(t *testing.T) {
	if got := ComputeState(nil); got != StateFree {
		t.Fatalf("state for nil plan = %q, want free", got)
	}

	trial := &entitlement.Plan{Name: plans.TierFreeTrial, StartedAt: time.Now(), DurationDays: plans.TrialDays}
	if got := ComputeState(trial); got != StateTrial {
		t.Fatalf("state for trial = %q, want trial", got)
	}

	paid := &entitlement.Plan{Name: plans.TierBasic, StartedAt: time.Now(), DurationDays: plans.PaidDays}
	if got := ComputeState(paid); got != StatePremium {
		t.Fatalf("state for paid plan = %q, want premium", got)
	}
}

func TestComputePolicyFreeLimits(t *testing.T) {
	p := ComputePolicy(nil)

	if p.State != StateFree {
		t.Fatalf("state = %q, want free", p.State)
	}
	if p.Limits == nil {
		t.Fatal("free policy is missing its limits")
	}
	if p.Limits.AutoApplyFreeQuota != gate.FreeQuota {
		t.Errorf("free quota = %d, want %d", p.Limits.AutoApplyFreeQuota, gate.FreeQuota)
	}
	if p.Limits.TokenUnitCost != gate.UnitCost {
		t.Errorf("unit cost = %d, want %d", p.Limits.TokenUnitCost, gate.UnitCost)
	}
	if p.Limits.DailyTokenCredit != tokens.DailyCredit {
		t.Errorf("daily credit = %d, want %d", p.Limits.DailyTokenCredit, tokens.DailyCredit)
	}
}

func TestComputePolicyPremiumHasNoLimits(t *testing.T) {
	plan := &entitlement.Plan{Name: plans.TierEnterprise, StartedAt: time.Now(), DurationDays: plans.PaidDays}
	p := ComputePolicy(plan)

	if p.State != StatePremium {
		t.Fatalf("state = %q, want premium", p.State)
	}
	if p.Limits != nil {
		t.Fatalf("premium policy carries limits: %+v", p.Limits)
	}

	caps := map[string]bool{}
	for _, c := range p.Capabilities {
		caps[c] = true
	}
	for _, want := range []string{"auto_apply_unlimited", "skill_gap_analysis", "interview_simulation"} {
		if !caps[want] {
			t.Errorf("enterprise capabilities missing %q", want)
		}
	}
}
