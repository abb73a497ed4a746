package entitlement

import (
	"errors"
	"fmt"
	"time"

	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/plans"
	"internship-app/internal/kvstore"
)

// KeyActivePlan is the storage key holding the current plan record.
const KeyActivePlan = "activePlan"

// ErrInvalidInput marks a rejected argument (e.g. an unknown paid tier).
var ErrInvalidInput = errors.New("entitlement: invalid input")

// Plan is the persisted entitlement record. At most one exists per user;
// activating a new plan overwrites it outright — no stacking, no proration.
type Plan struct {
	Name          string    `json:"name"`
	StartedAt     time.Time `json:"startedAt"`
	DurationDays  int       `json:"durationDays"`
	Features      []string  `json:"features"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	PaymentDetail string    `json:"paymentDetail,omitempty"`
}

// PaymentInfo carries the method/detail pair the billing layer resolved for a
// paid activation.
type PaymentInfo struct {
	Method string
	Detail string
}

// Ledger is the single source of truth for whether a user currently holds
// elevated access and through when.
type Ledger struct {
	store kvstore.Store
	clk   clock.Clock
}

func NewLedger(store kvstore.Store, clk clock.Clock) *Ledger {
	return &Ledger{store: store, clk: clk}
}

// ActivateFreeTrial starts a 7-day trial, replacing any current plan.
func (l *Ledger) ActivateFreeTrial() (Plan, error) {
	p := Plan{
		Name:         plans.TierFreeTrial,
		StartedAt:    l.clk.Now(),
		DurationDays: plans.TrialDays,
		Features:     plans.FeaturesFor(plans.TierFreeTrial),
	}
	if err := l.store.Put(KeyActivePlan, p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// ActivatePaidPlan activates a 30-day paid tier, unconditionally overwriting
// whatever plan is stored.
func (l *Ledger) ActivatePaidPlan(tier string, info PaymentInfo) (Plan, error) {
	if !plans.IsPaidTier(tier) {
		return Plan{}, fmt.Errorf("%w: unknown plan tier %q", ErrInvalidInput, tier)
	}
	p := Plan{
		Name:          tier,
		StartedAt:     l.clk.Now(),
		DurationDays:  plans.PaidDays,
		Features:      plans.FeaturesFor(tier),
		PaymentMethod: info.Method,
		PaymentDetail: info.Detail,
	}
	if err := l.store.Put(KeyActivePlan, p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// ActivePlan returns the current plan, or nil when none was ever activated or
// the stored one has run out. Expired records stay in storage; expiry is
// derived, not a mutation.
func (l *Ledger) ActivePlan() (*Plan, error) {
	var p Plan
	found, err := l.store.Get(KeyActivePlan, &p)
	if err != nil {
		return nil, err
	}
	if !found || l.expired(p) {
		return nil, nil
	}
	return &p, nil
}

// DaysRemaining reports full days left on the current plan; nil when there is
// no active plan. Never negative.
func (l *Ledger) DaysRemaining() (*int, error) {
	p, err := l.ActivePlan()
	if err != nil || p == nil {
		return nil, err
	}
	elapsed := int(l.clk.Now().Sub(p.StartedAt).Hours() / 24)
	left := p.DurationDays - elapsed
	if left < 0 {
		left = 0
	}
	return &left, nil
}

// IsActive reports whether any non-expired plan exists.
func (l *Ledger) IsActive() (bool, error) {
	p, err := l.ActivePlan()
	return p != nil, err
}

// A plan is expired once durationDays has fully elapsed, boundary inclusive:
// at startedAt + durationDays exactly the plan is already gone.
func (l *Ledger) expired(p Plan) bool {
	return l.clk.Now().Sub(p.StartedAt) >= time.Duration(p.DurationDays)*24*time.Hour
}
