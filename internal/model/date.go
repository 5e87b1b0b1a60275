package model

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Dates are calendar days without a time component. Every conversion to
// time.Time anchors at 12:00 UTC so that parsing and re-formatting a date
// can never shift it across a day boundary, whatever the host timezone.
const anchorHour = 12

// Date is a calendar date in zero-padded YYYY-MM-DD form. The zero-padded
// layout makes lexical comparison equivalent to chronological comparison,
// which the storage range queries rely on.
type Date string

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("model: invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func Today(now time.Time) Date {
	return DateOf(now)
}

func (d Date) Valid() bool {
	_, err := time.Parse(dateLayout, string(d))
	return err == nil
}

// Time returns the date at the fixed noon-UTC anchor.
func (d Date) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), anchorHour, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) AddMonths(n int) Date {
	return DateOf(d.Time().AddDate(0, n, 0))
}

func (d Date) AddYears(n int) Date {
	return DateOf(d.Time().AddDate(n, 0, 0))
}

func (d Date) Before(other Date) bool { return d < other }

func (d Date) After(other Date) bool { return d > other }

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
