package access

import (
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/plans"
)

// Effective access for UI/product: trial|premium|free, read straight off the
// entitlement ledger plan (nil = expired or never activated).
func ComputeState(p *entitlement.Plan) State {
	switch {
	case p == nil:
		return StateFree
	case p.Name == plans.TierFreeTrial:
		return StateTrial
	default:
		return StatePremium
	}
}
