package tokens

import (
	"errors"
	"fmt"

	"internship-app/internal/domain/clock"
	"internship-app/internal/kvstore"
)

// Storage keys.
const (
	KeyBalance       = "aiTokenBalance"
	KeyLastCreditDay = "lastTokenCreditDay"
)

// DailyCredit is added to the balance once per UTC calendar day, lazily, on
// the first touch of that day.
const DailyCredit = 25

// ErrInvalidInput marks a rejected cost/amount argument.
var ErrInvalidInput = errors.New("tokens: invalid input")

// Meter is the day-credited, debit-on-use balance behind gated bulk actions.
type Meter struct {
	store kvstore.Store
	clk   clock.Clock
}

func NewMeter(store kvstore.Store, clk clock.Clock) *Meter {
	return &Meter{store: store, clk: clk}
}

// Balance applies the daily credit if one is due, then returns the amount.
func (m *Meter) Balance() (int, error) {
	return m.settle()
}

// Debit subtracts cost when the balance covers it. Returns false and leaves
// the balance untouched when it does not — no partial debit, no overdraft.
func (m *Meter) Debit(cost int) (bool, error) {
	if cost <= 0 {
		return false, fmt.Errorf("%w: debit cost %d", ErrInvalidInput, cost)
	}
	balance, err := m.settle()
	if err != nil {
		return false, err
	}
	if balance < cost {
		return false, nil
	}
	if err := m.store.Put(KeyBalance, balance-cost); err != nil {
		return false, err
	}
	return true, nil
}

// MaxAffordable reports how many unitCost items the balance covers, after
// settling the daily credit.
func (m *Meter) MaxAffordable(unitCost int) (int, error) {
	if unitCost <= 0 {
		return 0, fmt.Errorf("%w: unit cost %d", ErrInvalidInput, unitCost)
	}
	balance, err := m.settle()
	if err != nil {
		return 0, err
	}
	return balance / unitCost, nil
}

// CreditBonus adds tokens outside the daily schedule (referral rewards, admin
// grants) and returns the new balance. The balance is deliberately uncapped.
func (m *Meter) CreditBonus(amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: bonus amount %d", ErrInvalidInput, amount)
	}
	balance, err := m.settle()
	if err != nil {
		return 0, err
	}
	balance += amount
	if err := m.store.Put(KeyBalance, balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// settle applies the once-per-day credit. Idempotent within a day: the second
// call on the same DayID is a no-op.
func (m *Meter) settle() (int, error) {
	var balance int
	if _, err := m.store.Get(KeyBalance, &balance); err != nil {
		return 0, err
	}
	today := clock.DayID(m.clk.Now())
	var lastDay string
	if _, err := m.store.Get(KeyLastCreditDay, &lastDay); err != nil {
		return 0, err
	}
	if lastDay == today {
		return balance, nil
	}
	balance += DailyCredit
	if err := m.store.Put(KeyBalance, balance); err != nil {
		return 0, err
	}
	if err := m.store.Put(KeyLastCreditDay, today); err != nil {
		return 0, err
	}
	return balance, nil
}
