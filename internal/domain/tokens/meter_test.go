package tokens

import (
	"errors"
	"testing"
	"time"

	"internship-app/internal/kvstore"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestMeter(t *testing.T) (*Meter, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	return NewMeter(kvstore.NewMemory(), clk), clk
}

func TestDailyCreditOncePerDay(t *testing.T) {
	meter, clk := newTestMeter(t)

	// first touch of the day credits
	balance, err := meter.Balance()
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != DailyCredit {
		t.Fatalf("first balance = %d, want %d", balance, DailyCredit)
	}

	// second touch the same day does not
	clk.now = clk.now.Add(6 * time.Hour)
	balance, err = meter.Balance()
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != DailyCredit {
		t.Fatalf("same-day balance = %d, want %d", balance, DailyCredit)
	}

	// next UTC day credits again, unspent tokens carry over
	clk.now = clk.now.Add(24 * time.Hour)
	balance, err = meter.Balance()
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 2*DailyCredit {
		t.Fatalf("next-day balance = %d, want %d", balance, 2*DailyCredit)
	}
}

func TestDebit(t *testing.T) {
	meter, _ := newTestMeter(t)

	ok, err := meter.Debit(10)
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if !ok {
		t.Fatal("Debit refused despite sufficient balance")
	}

	balance, _ := meter.Balance()
	if balance != DailyCredit-10 {
		t.Fatalf("balance after debit = %d, want %d", balance, DailyCredit-10)
	}
}

func TestDebitNoOverdraft(t *testing.T) {
	meter, _ := newTestMeter(t)

	ok, err := meter.Debit(DailyCredit + 1)
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if ok {
		t.Fatal("Debit succeeded past the balance")
	}

	// nothing was deducted
	balance, _ := meter.Balance()
	if balance != DailyCredit {
		t.Fatalf("balance after refused debit = %d, want %d", balance, DailyCredit)
	}
}

func TestDebitRejectsNonPositiveCost(t *testing.T) {
	meter, _ := newTestMeter(t)

	for _, cost := range []int{0, -5} {
		if _, err := meter.Debit(cost); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Debit(%d) error = %v, want ErrInvalidInput", cost, err)
		}
	}
}

func TestMaxAffordable(t *testing.T) {
	meter, _ := newTestMeter(t)

	// balance 25, unit 10 -> 2
	n, err := meter.MaxAffordable(10)
	if err != nil {
		t.Fatalf("MaxAffordable: %v", err)
	}
	if n != 2 {
		t.Fatalf("MaxAffordable(10) = %d, want 2", n)
	}

	if _, err := meter.MaxAffordable(0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("MaxAffordable(0) error = %v, want ErrInvalidInput", err)
	}
}

func TestCreditBonus(t *testing.T) {
	meter, _ := newTestMeter(t)

	balance, err := meter.CreditBonus(25)
	if err != nil {
		t.Fatalf("CreditBonus: %v", err)
	}
	if balance != DailyCredit+25 {
		t.Fatalf("balance after bonus = %d, want %d", balance, DailyCredit+25)
	}

	if _, err := meter.CreditBonus(-1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("CreditBonus(-1) error = %v, want ErrInvalidInput", err)
	}
}
