package access

import (
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/gate"
	"internship-app/internal/domain/tokens"
)

type Policy struct {
	State        State
	Capabilities []string
	Limits       *FreeLimits
}

// FreeLimits describes the metering a non-premium user is under. Nil for
// trial/premium users.
type FreeLimits struct {
	AutoApplyFreeQuota int
	TokenUnitCost      int
	DailyTokenCredit   int
}

func ComputePolicy(p *entitlement.Plan) Policy {
	state := ComputeState(p)

	var limits *FreeLimits
	if state == StateFree {
		limits = &FreeLimits{
			AutoApplyFreeQuota: gate.FreeQuota,
			TokenUnitCost:      gate.UnitCost,
			DailyTokenCredit:   tokens.DailyCredit,
		}
	}

	return Policy{
		State:        state,
		Capabilities: CapabilitiesFor(state, p),
		Limits:       limits,
	}
}
