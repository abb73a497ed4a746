package gate

import (
	"internship-app/internal/domain/clock"
	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/tokens"
	"internship-app/internal/kvstore"
)

// Storage keys for the auto-apply action kind.
const (
	KeyLastFreeAutoApplyDay = "lastFreeAutoApplyDay"
	KeyAppliedItemIDs       = "appliedItemIds"
)

// Auto-apply pricing: the first batch each day is free up to FreeQuota items,
// everything after that costs UnitCost tokens per item.
const (
	FreeQuota = 5
	UnitCost  = 10
)

// Mode says how a batch is satisfied.
type Mode string

const (
	ModePremium Mode = "premium" // active plan, unmetered
	ModeFree    Mode = "free"    // the one free batch of the day
	ModeTokens  Mode = "tokens"  // token-debited
)

// Decision is the dry-run answer for one invocation.
type Decision struct {
	Mode       Mode     `json:"mode"`
	Eligible   []string `json:"eligible"`   // candidates not yet processed
	Items      []string `json:"items"`      // subset that would be processed now
	TokenCost  int      `json:"token_cost"` // debit Apply would make
	Affordable int      `json:"affordable"` // only meaningful in token mode
	Denied     bool     `json:"denied"`     // token-gated and nothing affordable
}

// Result reports what a committed invocation actually did. An
// insufficient-tokens denial is an ordinary outcome, not an error.
type Result struct {
	Mode      Mode     `json:"mode"`
	Processed []string `json:"processed"`
	TokenCost int      `json:"token_cost"`
	Denied    bool     `json:"denied"`
}

// Gate decides, per gated bulk action, what an invocation may do: free for
// premium users, one free batch per day for everyone else, tokens after that.
type Gate struct {
	ledger *entitlement.Ledger
	meter  *tokens.Meter
	store  kvstore.Store
	clk    clock.Clock

	freeUseKey string
	appliedKey string
	freeQuota  int
	unitCost   int
}

// NewAutoApply builds the gate for the auto-apply action kind.
func NewAutoApply(ledger *entitlement.Ledger, meter *tokens.Meter, store kvstore.Store, clk clock.Clock) *Gate {
	return &Gate{
		ledger:     ledger,
		meter:      meter,
		store:      store,
		clk:        clk,
		freeUseKey: KeyLastFreeAutoApplyDay,
		appliedKey: KeyAppliedItemIDs,
		freeQuota:  FreeQuota,
		unitCost:   UnitCost,
	}
}

// Preview computes the decision for candidates without mutating anything, so
// the caller can show the affordable count before committing.
func (g *Gate) Preview(candidates []string) (Decision, error) {
	return g.decide(candidates)
}

// Apply commits the decision: marks the free use, or debits tokens, then
// records the processed ids. Returns exactly the ids that were processed.
func (g *Gate) Apply(candidates []string) (Result, error) {
	d, err := g.decide(candidates)
	if err != nil {
		return Result{}, err
	}
	if d.Denied {
		return Result{Mode: d.Mode, Denied: true}, nil
	}
	if len(d.Items) == 0 {
		// Nothing eligible: no state is touched, the free batch survives.
		return Result{Mode: d.Mode}, nil
	}

	switch d.Mode {
	case ModeFree:
		if err := g.store.Put(g.freeUseKey, clock.DayID(g.clk.Now())); err != nil {
			return Result{}, err
		}
	case ModeTokens:
		ok, err := g.meter.Debit(d.TokenCost)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			// Balance moved between decide and debit; deny, nothing mutated.
			return Result{Mode: ModeTokens, Denied: true}, nil
		}
	}

	if err := g.markProcessed(d.Items); err != nil {
		return Result{}, err
	}
	return Result{Mode: d.Mode, Processed: d.Items, TokenCost: d.TokenCost}, nil
}

func (g *Gate) decide(candidates []string) (Decision, error) {
	eligible, err := g.eligible(candidates)
	if err != nil {
		return Decision{}, err
	}

	active, err := g.ledger.IsActive()
	if err != nil {
		return Decision{}, err
	}
	if active {
		return Decision{Mode: ModePremium, Eligible: eligible, Items: eligible}, nil
	}

	free, err := g.freeAvailable()
	if err != nil {
		return Decision{}, err
	}
	if free {
		n := min(g.freeQuota, len(eligible))
		return Decision{Mode: ModeFree, Eligible: eligible, Items: eligible[:n]}, nil
	}

	affordable, err := g.meter.MaxAffordable(g.unitCost)
	if err != nil {
		return Decision{}, err
	}
	d := Decision{Mode: ModeTokens, Eligible: eligible, Affordable: affordable}
	n := min(affordable, len(eligible))
	if n == 0 {
		// empty eligible is a no-op, not a denial
		d.Denied = len(eligible) > 0
		return d, nil
	}
	d.Items = eligible[:n]
	d.TokenCost = n * g.unitCost
	return d, nil
}

// freeAvailable derives the FreeAvailable/TokenGated state from the day
// string; there is no explicit transition back, a new day resets it.
func (g *Gate) freeAvailable() (bool, error) {
	var lastDay string
	if _, err := g.store.Get(g.freeUseKey, &lastDay); err != nil {
		return false, err
	}
	return lastDay != clock.DayID(g.clk.Now()), nil
}

// eligible filters candidates down to ids never processed before, preserving
// order and dropping duplicates.
func (g *Gate) eligible(candidates []string) ([]string, error) {
	var processed []string
	if _, err := g.store.Get(g.appliedKey, &processed); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(processed))
	for _, id := range processed {
		seen[id] = true
	}

	eligible := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if seen[id] {
			continue
		}
		seen[id] = true
		eligible = append(eligible, id)
	}
	return eligible, nil
}

func (g *Gate) markProcessed(ids []string) error {
	var processed []string
	if _, err := g.store.Get(g.appliedKey, &processed); err != nil {
		return err
	}
	processed = append(processed, ids...)
	return g.store.Put(g.appliedKey, processed)
}
