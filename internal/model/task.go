package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority   = errors.New("model: invalid task priority")
	ErrInvalidRecurrence = errors.New("model: invalid task recurrence")
	ErrInvalidInterval   = errors.New("model: custom recurrence requires a positive interval")
	ErrInvalidDate       = errors.New("model: invalid due date")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task is one chore occurrence. A recurring chore is a chain of Task rows
// linked through SeriesID: the first row has no SeriesID and its own id
// acts as the series key for every later occurrence.
type Task struct {
	ID             int64
	Title          string
	Notes          string
	Category       string
	DueDate        Date
	Priority       Priority
	Recurrence     Recurrence
	CustomInterval int
	SeriesID       *int64
	Completed      bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

// SeriesKey is the id shared by every occurrence of the task's series.
func (t Task) SeriesKey() int64 {
	if t.SeriesID != nil {
		return *t.SeriesID
	}
	return t.ID
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.DueDate.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.DueDate)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Recurrence.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRecurrence, t.Recurrence)
	}
	if t.Recurrence == RecurrenceCustom && t.CustomInterval <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, t.CustomInterval)
	}
	if t.Completed && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is not completed")
	}
	return nil
}

type Category struct {
	ID    int64
	Name  string
	Color string
	Icon  string
	Order int
}

type Achievement struct {
	ID         int64
	Key        string
	UnlockedAt time.Time
}

// Setting is a key-value pair; values are stored JSON-encoded so booleans,
// strings and counters share one table.
type Setting struct {
	Key   string
	Value string
}

// Recognized setting keys.
const (
	SettingHapticFeedback = "hapticFeedback"
	SettingTheme          = "theme"
	SettingTotalCompleted = "totalCompleted"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeLemon Theme = "lemon"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeLemon:
		return true
	default:
		return false
	}
}

// CompletionLogEntry is an append-only audit record of a completion.
// Nothing reads it back today; it exists for future analytics.
type CompletionLogEntry struct {
	ID     int64
	Date   Date
	TaskID int64
}
