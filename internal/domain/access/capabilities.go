package access

import (
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/plans"
)

func CapabilitiesFor(state State, p *entitlement.Plan) []string {
	// free: browsing and manual applications only
	if state == StateFree {
		return []string{"browse", "apply", "resume_builder"}
	}

	// trial behaves like pro for its week
	if state == StateTrial {
		return []string{"browse", "apply", "resume_builder", "auto_apply_unlimited", "skill_gap_analysis"}
	}

	// premium: tier-based
	tier := plans.TierNone
	if p != nil {
		tier = p.Name
	}
	switch tier {
	case plans.TierBasic:
		return []string{"browse", "apply", "resume_builder", "auto_apply_unlimited"}
	case plans.TierPro:
		return []string{"browse", "apply", "resume_builder", "auto_apply_unlimited", "skill_gap_analysis", "resume_tailoring"}
	case plans.TierEnterprise:
		return []string{"browse", "apply", "resume_builder", "auto_apply_unlimited", "skill_gap_analysis", "resume_tailoring", "interview_simulation", "priority_support"}
	default:
		return []string{"browse", "apply", "resume_builder", "auto_apply_unlimited"}
	}
}
