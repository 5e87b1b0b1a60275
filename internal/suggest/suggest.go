// Package suggest turns a free-form description of a household into a
// set of chore suggestions, via an LLM reached through the schedule
// proxy.
package suggest

import (
	"errors"
	"strings"

	"squeaky/internal/model"
)

const MaxPromptLen = 2000

var (
	ErrEmptyPrompt       = errors.New("suggest: prompt is empty")
	ErrPromptTooLong     = errors.New("suggest: prompt exceeds 2000 characters")
	ErrRateLimited       = errors.New("suggest: rate limit exceeded, try again later")
	ErrUnavailable       = errors.New("suggest: service temporarily unavailable")
	ErrMalformedResponse = errors.New("suggest: could not parse model response")
)

// Suggestion is one proposed chore as the model emits it. Frequency is
// free text and mapped to a recurrence kind only when drafting tasks.
type Suggestion struct {
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes"`
}

// ValidatePrompt applies the limits both the client and the proxy
// enforce.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	if len(prompt) > MaxPromptLen {
		return ErrPromptTooLong
	}
	return nil
}

// DraftTasks converts suggestions into addable tasks. Suggested chores
// start tomorrow so today's list is not flooded; unknown categories and
// priorities fall back to sensible defaults rather than failing the
// whole batch.
func DraftTasks(suggestions []Suggestion, today model.Date) []model.Task {
	drafts := make([]model.Task, 0, len(suggestions))
	for _, s := range suggestions {
		title := strings.TrimSpace(s.Title)
		if title == "" {
			continue
		}
		category := strings.TrimSpace(s.Category)
		if category == "" {
			category = "General"
		}
		priority := model.Priority(strings.ToLower(strings.TrimSpace(s.Priority)))
		if !priority.IsValid() {
			priority = model.PriorityMedium
		}
		drafts = append(drafts, model.Task{
			Title:      title,
			Notes:      strings.TrimSpace(s.Notes),
			Category:   category,
			DueDate:    today.AddDays(1),
			Priority:   priority,
			Recurrence: model.MapFrequency(s.Frequency),
		})
	}
	return drafts
}
