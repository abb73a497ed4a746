package entitlement

import (
	"errors"
	"testing"
	"time"

	"internship-app/internal/domain/plans"
	"internship-app/internal/kvstore"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestLedger(t *testing.T) (*Ledger, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	return NewLedger(kvstore.NewMemory(), clk), clk
}

func TestActivateFreeTrial(t *testing.T) {
	ledger, clk := newTestLedger(t)

	p, err := ledger.ActivateFreeTrial()
	if err != nil {
		t.Fatalf("ActivateFreeTrial: %v", err)
	}
	if p.Name != plans.TierFreeTrial {
		t.Fatalf("plan name = %q, want %q", p.Name, plans.TierFreeTrial)
	}
	if p.DurationDays != plans.TrialDays {
		t.Fatalf("duration = %d, want %d", p.DurationDays, plans.TrialDays)
	}
	if !p.StartedAt.Equal(clk.now) {
		t.Fatalf("startedAt = %v, want %v", p.StartedAt, clk.now)
	}

	active, err := ledger.IsActive()
	if err != nil {
		t.Fatalf("IsActive: %v", err)
	}
	if !active {
		t.Fatal("trial just activated but IsActive = false")
	}
}

func TestActivatePaidPlanOverwritesTrial(t *testing.T) {
	ledger, _ := newTestLedger(t)

	if _, err := ledger.ActivateFreeTrial(); err != nil {
		t.Fatalf("ActivateFreeTrial: %v", err)
	}
	if _, err := ledger.ActivatePaidPlan(plans.TierPro, PaymentInfo{Method: "stripe", Detail: "sub_123"}); err != nil {
		t.Fatalf("ActivatePaidPlan: %v", err)
	}

	p, err := ledger.ActivePlan()
	if err != nil {
		t.Fatalf("ActivePlan: %v", err)
	}
	if p == nil || p.Name != plans.TierPro {
		t.Fatalf("active plan = %+v, want pro", p)
	}
	if p.DurationDays != plans.PaidDays {
		t.Fatalf("duration = %d, want %d", p.DurationDays, plans.PaidDays)
	}
	if p.PaymentMethod != "stripe" || p.PaymentDetail != "sub_123" {
		t.Fatalf("payment info = %q/%q, want stripe/sub_123", p.PaymentMethod, p.PaymentDetail)
	}
}

func TestActivatePaidPlanUnknownTier(t *testing.T) {
	ledger, _ := newTestLedger(t)

	_, err := ledger.ActivatePaidPlan("platinum", PaymentInfo{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}

	// rejected activation must not write anything
	p, err := ledger.ActivePlan()
	if err != nil {
		t.Fatalf("ActivePlan: %v", err)
	}
	if p != nil {
		t.Fatalf("plan stored after rejected activation: %+v", p)
	}
}

func TestExpiryBoundaryIsInclusive(t *testing.T) {
	ledger, clk := newTestLedger(t)
	start := clk.now

	if _, err := ledger.ActivateFreeTrial(); err != nil {
		t.Fatalf("ActivateFreeTrial: %v", err)
	}

	// one second before the boundary: still active
	clk.now = start.Add(7*24*time.Hour - time.Second)
	if active, _ := ledger.IsActive(); !active {
		t.Fatal("plan expired one second early")
	}

	// exactly 7 days later: gone
	clk.now = start.Add(7 * 24 * time.Hour)
	if active, _ := ledger.IsActive(); active {
		t.Fatal("plan still active exactly at the expiry boundary")
	}

	p, err := ledger.ActivePlan()
	if err != nil {
		t.Fatalf("ActivePlan: %v", err)
	}
	if p != nil {
		t.Fatalf("expired plan still returned: %+v", p)
	}
}

func TestDaysRemaining(t *testing.T) {
	ledger, clk := newTestLedger(t)
	start := clk.now

	// no plan yet
	left, err := ledger.DaysRemaining()
	if err != nil {
		t.Fatalf("DaysRemaining: %v", err)
	}
	if left != nil {
		t.Fatalf("days remaining without a plan = %d, want nil", *left)
	}

	if _, err := ledger.ActivateFreeTrial(); err != nil {
		t.Fatalf("ActivateFreeTrial: %v", err)
	}

	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 7},
		{3 * 24 * time.Hour, 4},
		{6*24*time.Hour + 23*time.Hour, 1},
	}
	for _, tc := range cases {
		clk.now = start.Add(tc.elapsed)
		left, err := ledger.DaysRemaining()
		if err != nil {
			t.Fatalf("DaysRemaining at +%v: %v", tc.elapsed, err)
		}
		if left == nil || *left != tc.want {
			t.Fatalf("DaysRemaining at +%v = %v, want %d", tc.elapsed, left, tc.want)
		}
	}

	// after expiry there is no plan, so no days either
	clk.now = start.Add(8 * 24 * time.Hour)
	left, err = ledger.DaysRemaining()
	if err != nil {
		t.Fatalf("DaysRemaining after expiry: %v", err)
	}
	if left != nil {
		t.Fatalf("DaysRemaining after expiry = %d, want nil", *left)
	}
}

// brokenStore fails every operation, to check errors surface instead of being
// swallowed into "no plan".
type brokenStore struct{}

func (brokenStore) Get(key string, out any) (bool, error) {
	return false, &kvstore.StorageError{Op: "get", Key: key, Err: errors.New("db down")}
}

func (brokenStore) Put(key string, value any) error {
	return &kvstore.StorageError{Op: "put", Key: key, Err: errors.New("db down")}
}

func (brokenStore) Delete(key string) error {
	return &kvstore.StorageError{Op: "delete", Key: key, Err: errors.New("db down")}
}

func TestStorageErrorsPropagate(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	ledger := NewLedger(brokenStore{}, clk)

	var serr *kvstore.StorageError

	if _, err := ledger.ActivateFreeTrial(); !errors.As(err, &serr) {
		t.Fatalf("ActivateFreeTrial error = %v, want *StorageError", err)
	}
	if _, err := ledger.ActivePlan(); !errors.As(err, &serr) {
		t.Fatalf("ActivePlan error = %v, want *StorageError", err)
	}
	if _, err := ledger.IsActive(); !errors.As(err, &serr) {
		t.Fatalf("IsActive error = %v, want *StorageError", err)
	}
}
