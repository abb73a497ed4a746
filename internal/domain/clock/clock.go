package clock

import "time"

// Clock supplies "now". Injected into the ledger/meter/gate so day rollover
// can be simulated deterministically in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// DayID reduces a point in time to its UTC calendar day, e.g. "2026-08-29".
// Every once-per-day rule compares these strings and nothing else.
func DayID(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
