package model

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d != "2024-03-09" {
		t.Fatalf("unexpected date: %q", d)
	}
	if _, err := ParseDate("03/09/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if _, err := ParseDate("2024-3-9"); err == nil {
		t.Fatalf("expected error for unpadded date")
	}
}

func TestDateNoonAnchor(t *testing.T) {
	d := Date("2024-03-09")
	at := d.Time()
	if at.Hour() != 12 || at.Location() != time.UTC {
		t.Fatalf("expected noon UTC anchor, got %s", at)
	}
	// Round-tripping through the anchor must never shift the day.
	if DateOf(at) != d {
		t.Fatalf("round trip shifted date: %s", DateOf(at))
	}
}

func TestDateArithmeticAndOrdering(t *testing.T) {
	d := Date("2024-12-30")
	if got := d.AddDays(3); got != "2025-01-02" {
		t.Fatalf("AddDays crossed year wrong: %s", got)
	}
	if !Date("2024-01-09").Before("2024-01-10") {
		t.Fatalf("lexical ordering broken")
	}
	if !Date("2024-10-01").After("2024-09-30") {
		t.Fatalf("zero-padded months must compare chronologically")
	}
}

func TestDateWeekend(t *testing.T) {
	if !Date("2024-03-09").IsWeekend() { // Saturday
		t.Fatalf("expected Saturday to be weekend")
	}
	if Date("2024-03-11").IsWeekend() { // Monday
		t.Fatalf("expected Monday to be a weekday")
	}
}
