package model

import "testing"

func TestNextOccurrenceKinds(t *testing.T) {
	cases := []struct {
		name       string
		due        Date
		recurrence Recurrence
		interval   int
		want       Date
		wantOK     bool
	}{
		{"daily", "2024-01-01", RecurrenceDaily, 0, "2024-01-02", true},
		{"weekly", "2024-01-01", RecurrenceWeekly, 0, "2024-01-08", true},
		{"biweekly", "2024-01-01", RecurrenceBiweekly, 0, "2024-01-15", true},
		{"monthly", "2024-01-15", RecurrenceMonthly, 0, "2024-02-15", true},
		{"quarterly", "2024-01-15", RecurrenceQuarterly, 0, "2024-04-15", true},
		{"annually", "2024-02-29", RecurrenceAnnually, 0, "2025-03-01", true},
		{"custom", "2024-01-01", RecurrenceCustom, 7, "2024-01-08", true},
		{"custom zero interval", "2024-01-01", RecurrenceCustom, 0, "", false},
		{"custom negative interval", "2024-01-01", RecurrenceCustom, -5, "", false},
		{"none", "2024-01-01", RecurrenceNone, 0, "", false},
		{"unrecognized", "2024-01-01", Recurrence("fortnightly"), 0, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NextOccurrence(tc.due, tc.recurrence, tc.interval)
			if ok != tc.wantOK {
				t.Fatalf("NextOccurrence(%s, %s, %d) ok = %v, want %v", tc.due, tc.recurrence, tc.interval, ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("NextOccurrence(%s, %s, %d) = %q, want %q", tc.due, tc.recurrence, tc.interval, got, tc.want)
			}
		})
	}
}

func TestNextOccurrenceMonthEndRollover(t *testing.T) {
	// Jan 31 + 1 month normalizes into March; the rollover is accepted,
	// not clamped to Feb 29.
	got, ok := NextOccurrence("2024-01-31", RecurrenceMonthly, 0)
	if !ok {
		t.Fatalf("expected a next occurrence")
	}
	if got != "2024-03-02" {
		t.Fatalf("month-end rollover = %q, want 2024-03-02", got)
	}
}

func TestNextOccurrenceStrictlyLater(t *testing.T) {
	due := Date("2024-06-15")
	for _, r := range []Recurrence{RecurrenceDaily, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceAnnually} {
		next, ok := NextOccurrence(due, r, 0)
		if !ok {
			t.Fatalf("%s: expected a next occurrence", r)
		}
		if !next.After(due) {
			t.Fatalf("%s: next %s is not after %s", r, next, due)
		}
		again, _ := NextOccurrence(due, r, 0)
		if again != next {
			t.Fatalf("%s: not deterministic: %s vs %s", r, again, next)
		}
	}
}

func TestMapFrequency(t *testing.T) {
	cases := []struct {
		in   string
		want Recurrence
	}{
		{"daily", RecurrenceDaily},
		{"Every day", RecurrenceDaily},
		{"biweekly", RecurrenceBiweekly},
		{"Bi-Weekly", RecurrenceBiweekly},
		{"weekly", RecurrenceWeekly},
		{"twice a week", RecurrenceWeekly},
		{"quarterly", RecurrenceQuarterly},
		{"annually", RecurrenceAnnually},
		{"every year", RecurrenceAnnually},
		{"monthly", RecurrenceMonthly},
		{"whenever", RecurrenceNone},
		{"", RecurrenceNone},
	}
	for _, tc := range cases {
		if got := MapFrequency(tc.in); got != tc.want {
			t.Fatalf("MapFrequency(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
