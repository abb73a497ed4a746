package gate

import (
	"fmt"
	"testing"
	"time"

	"internship-app/internal/domain/entitlement"
	"internship-app/internal/domain/tokens"
	"internship-app/internal/kvstore"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fixture struct {
	gate   *Gate
	ledger *entitlement.Ledger
	meter  *tokens.Meter
	clk    *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kvstore.NewMemory()
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	ledger := entitlement.NewLedger(store, clk)
	meter := tokens.NewMeter(store, clk)
	return &fixture{
		gate:   NewAutoApply(ledger, meter, store, clk),
		ledger: ledger,
		meter:  meter,
		clk:    clk,
	}
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("intern-%d", i+1)
	}
	return out
}

func TestFreeBatchThenTokens(t *testing.T) {
	f := newFixture(t)
	candidates := ids(18)

	// first batch of the day: free, capped at the quota
	res, err := f.gate.Apply(candidates)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Mode != ModeFree {
		t.Fatalf("mode = %q, want free", res.Mode)
	}
	if len(res.Processed) != FreeQuota {
		t.Fatalf("processed %d items, want %d", len(res.Processed), FreeQuota)
	}
	if res.TokenCost != 0 {
		t.Fatalf("free batch cost %d tokens", res.TokenCost)
	}

	// second batch the same day: token mode, daily credit of 25 covers 2 items
	res, err = f.gate.Apply(candidates)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Mode != ModeTokens {
		t.Fatalf("mode = %q, want tokens", res.Mode)
	}
	if len(res.Processed) != 2 {
		t.Fatalf("processed %d items, want 2", len(res.Processed))
	}
	if res.TokenCost != 2*UnitCost {
		t.Fatalf("token cost = %d, want %d", res.TokenCost, 2*UnitCost)
	}

	balance, err := f.meter.Balance()
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != tokens.DailyCredit-2*UnitCost {
		t.Fatalf("balance = %d, want %d", balance, tokens.DailyCredit-2*UnitCost)
	}

	// third batch: 5 tokens left, unit cost 10 -> denied, nothing mutated
	res, err = f.gate.Apply(candidates)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !res.Denied {
		t.Fatal("expected denial with insufficient tokens")
	}
	if len(res.Processed) != 0 {
		t.Fatalf("denied batch still processed %d items", len(res.Processed))
	}

	balance, _ = f.meter.Balance()
	if balance != tokens.DailyCredit-2*UnitCost {
		t.Fatalf("denial changed the balance to %d", balance)
	}
}

func TestProcessedItemsNeverRepeat(t *testing.T) {
	f := newFixture(t)
	candidates := ids(18)

	first, err := f.gate.Apply(candidates)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	second, err := f.gate.Apply(candidates)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	seen := map[string]bool{}
	for _, id := range append(first.Processed, second.Processed...) {
		if seen[id] {
			t.Fatalf("item %s processed twice", id)
		}
		seen[id] = true
	}
}

func TestPremiumIsUnmetered(t *testing.T) {
	f := newFixture(t)
	if _, err := f.ledger.ActivatePaidPlan("pro", entitlement.PaymentInfo{}); err != nil {
		t.Fatalf("ActivatePaidPlan: %v", err)
	}

	res, err := f.gate.Apply(ids(18))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Mode != ModePremium {
		t.Fatalf("mode = %q, want premium", res.Mode)
	}
	if len(res.Processed) != 18 {
		t.Fatalf("processed %d items, want all 18", len(res.Processed))
	}
	if res.TokenCost != 0 {
		t.Fatalf("premium batch cost %d tokens", res.TokenCost)
	}

	// the token balance is untouched: only the daily credit shows
	balance, _ := f.meter.Balance()
	if balance != tokens.DailyCredit {
		t.Fatalf("balance = %d, want %d", balance, tokens.DailyCredit)
	}
}

func TestFreeBatchResetsNextDay(t *testing.T) {
	f := newFixture(t)

	res, err := f.gate.Apply(ids(6))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Mode != ModeFree {
		t.Fatalf("mode = %q, want free", res.Mode)
	}

	f.clk.now = f.clk.now.Add(24 * time.Hour)

	res, err = f.gate.Apply(ids(12))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Mode != ModeFree {
		t.Fatalf("mode the next day = %q, want free again", res.Mode)
	}
}

func TestEmptyEligibleKeepsFreeBatch(t *testing.T) {
	f := newFixture(t)

	// nothing eligible: no state is touched at all
	res, err := f.gate.Apply(nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Processed) != 0 || res.Denied {
		t.Fatalf("no-op batch = %+v", res)
	}

	// the free batch was not burned by the no-op
	res, err = f.gate.Apply(ids(3))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Mode != ModeFree {
		t.Fatalf("mode = %q, want free after a no-op run", res.Mode)
	}
	if len(res.Processed) != 3 {
		t.Fatalf("processed %d items, want 3", len(res.Processed))
	}
}

func TestExhaustedCandidatesAreNoOp(t *testing.T) {
	f := newFixture(t)
	candidates := ids(3)

	if _, err := f.gate.Apply(candidates); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// re-running with the same ids finds nothing eligible: not a denial and
	// no token movement
	res, err := f.gate.Apply(candidates)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Processed) != 0 || res.Denied {
		t.Fatalf("no-op batch = %+v", res)
	}
	balance, _ := f.meter.Balance()
	if balance != tokens.DailyCredit {
		t.Fatalf("no-op batch changed the balance to %d", balance)
	}
}

func TestPreviewDoesNotMutate(t *testing.T) {
	f := newFixture(t)
	candidates := ids(18)

	d, err := f.gate.Preview(candidates)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if d.Mode != ModeFree || len(d.Items) != FreeQuota {
		t.Fatalf("preview = %+v, want free batch of %d", d, FreeQuota)
	}

	// previewing again yields the same answer: nothing was consumed
	d2, err := f.gate.Preview(candidates)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if d2.Mode != ModeFree || len(d2.Items) != FreeQuota {
		t.Fatalf("second preview = %+v, state leaked from the first", d2)
	}
}

func TestDuplicateCandidatesCollapse(t *testing.T) {
	f := newFixture(t)

	res, err := f.gate.Apply([]string{"a", "a", "b", "a"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Processed) != 2 {
		t.Fatalf("processed %d items, want 2 distinct", len(res.Processed))
	}
}
