package core_test

import (
	"testing"
	"time"

	"stevedore-planner/internal/core"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"valid date", "2026-09-15", true},
		{"leap day", "2024-02-29", true},
		{"impossible day", "2024-02-30", false},
		{"thirteenth month", "2024-13-01", false},
		{"wrong order", "15-09-2026", false},
		{"slashes", "2026/09/15", false},
		{"missing zero padding", "2026-9-5", false},
		{"trailing time", "2026-09-15 10:00", false},
		{"garbage", "next tuesday", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := core.ParseDate(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && core.FormatDate(d) != tt.value {
				t.Errorf("round trip of %q gave %q", tt.value, core.FormatDate(d))
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	// Mid-afternoon "now": the whole-day count must not depend on the time of day.
	now := time.Date(2026, 9, 10, 15, 42, 7, 0, time.UTC)

	tests := []struct {
		name string
		trip string
		want int
	}{
		{"five days out", "2026-09-15", 5},
		{"tomorrow", "2026-09-11", 1},
		{"today", "2026-09-10", 0},
		{"yesterday", "2026-09-09", -1},
		{"across month boundary", "2026-10-01", 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip, ok := core.ParseDate(tt.trip)
			if !ok {
				t.Fatalf("test date %q did not parse", tt.trip)
			}
			if got := core.DaysUntil(trip, now); got != tt.want {
				t.Errorf("DaysUntil(%s) = %d, want %d", tt.trip, got, tt.want)
			}
		})
	}
}
