package model

import "strings"

type Recurrence string

const (
	RecurrenceNone      Recurrence = "none"
	RecurrenceDaily     Recurrence = "daily"
	RecurrenceWeekly    Recurrence = "weekly"
	RecurrenceBiweekly  Recurrence = "biweekly"
	RecurrenceMonthly   Recurrence = "monthly"
	RecurrenceQuarterly Recurrence = "quarterly"
	RecurrenceAnnually  Recurrence = "annually"
	RecurrenceCustom    Recurrence = "custom"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceBiweekly,
		RecurrenceMonthly, RecurrenceQuarterly, RecurrenceAnnually, RecurrenceCustom:
		return true
	default:
		return false
	}
}

// NextOccurrence computes the due date of the occurrence that follows due.
// The second return is false when the series does not continue: recurrence
// none, an unknown kind, or custom with a non-positive interval.
//
// Monthly, quarterly and annually step by calendar units; month-end
// overflow rolls into the next month (Jan 31 + 1 month = Mar 2/3) and is
// accepted rather than clamped.
func NextOccurrence(due Date, r Recurrence, customInterval int) (Date, bool) {
	switch r {
	case RecurrenceDaily:
		return due.AddDays(1), true
	case RecurrenceWeekly:
		return due.AddDays(7), true
	case RecurrenceBiweekly:
		return due.AddDays(14), true
	case RecurrenceMonthly:
		return due.AddMonths(1), true
	case RecurrenceQuarterly:
		return due.AddMonths(3), true
	case RecurrenceAnnually:
		return due.AddYears(1), true
	case RecurrenceCustom:
		if customInterval <= 0 {
			return "", false
		}
		return due.AddDays(customInterval), true
	default:
		return "", false
	}
}

// MapFrequency converts the free-text frequency field returned by the
// schedule generator into a Recurrence. Matching is substring-based and
// case-insensitive; order matters ("biweekly" contains "week").
func MapFrequency(freq string) Recurrence {
	f := strings.ToLower(freq)
	switch {
	case f == "":
		return RecurrenceNone
	case strings.Contains(f, "daily") || strings.Contains(f, "day"):
		return RecurrenceDaily
	case strings.Contains(f, "biweek") || strings.Contains(f, "bi-week"):
		return RecurrenceBiweekly
	case strings.Contains(f, "week"):
		return RecurrenceWeekly
	case strings.Contains(f, "quarter"):
		return RecurrenceQuarterly
	case strings.Contains(f, "annual") || strings.Contains(f, "year"):
		return RecurrenceAnnually
	case strings.Contains(f, "month"):
		return RecurrenceMonthly
	default:
		return RecurrenceNone
	}
}
