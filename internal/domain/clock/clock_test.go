package clock

import (
	"testing"
	"time"
)

func TestDayIDUsesUTC(t *testing.T) {
	// 02:30 on Jan 1st in UTC+5 is still Dec 31st in UTC
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2026, 1, 1, 2, 30, 0, 0, loc)

	if got := DayID(local); got != "2025-12-31" {
		t.Fatalf("DayID = %q, want %q", got, "2025-12-31")
	}
}

func TestDayIDSameInstantSameDay(t *testing.T) {
	utc := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	ny := utc.In(time.FixedZone("UTC-4", -4*3600))

	if DayID(utc) != DayID(ny) {
		t.Fatalf("same instant produced different day ids: %q vs %q", DayID(utc), DayID(ny))
	}
}
