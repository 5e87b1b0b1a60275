package suggest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"squeaky/internal/model"
)

func TestValidatePrompt(t *testing.T) {
	if err := ValidatePrompt("clean my flat"); err != nil {
		t.Fatalf("valid prompt rejected: %v", err)
	}
	if err := ValidatePrompt("   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
	if err := ValidatePrompt(strings.Repeat("x", MaxPromptLen+1)); !errors.Is(err, ErrPromptTooLong) {
		t.Fatalf("expected ErrPromptTooLong, got %v", err)
	}
}

func TestParseSuggestionsBareJSON(t *testing.T) {
	content := `{"tasks":[{"title":"Mop kitchen","frequency":"weekly","category":"Kitchen","priority":"high","notes":"Use hot water"}]}`
	tasks, err := ParseSuggestions(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Mop kitchen" || tasks[0].Frequency != "weekly" {
		t.Fatalf("unexpected parse: %#v", tasks)
	}
}

func TestParseSuggestionsEmbeddedInProse(t *testing.T) {
	content := "Here is your schedule:\n```json\n{\"tasks\":[{\"title\":\"Dust shelves\",\"frequency\":\"monthly\"}]}\n```\nEnjoy!"
	tasks, err := ParseSuggestions(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Dust shelves" {
		t.Fatalf("unexpected parse: %#v", tasks)
	}
}

func TestParseSuggestionsMalformed(t *testing.T) {
	if _, err := ParseSuggestions("no json here"); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
	if _, err := ParseSuggestions("{broken"); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse for truncated object, got %v", err)
	}
}

func TestDraftTasksMapping(t *testing.T) {
	today := model.Date("2024-01-10")
	drafts := DraftTasks([]Suggestion{
		{Title: "Mop kitchen", Frequency: "weekly", Category: "Kitchen", Priority: "HIGH", Notes: "tip"},
		{Title: "Odd job", Frequency: "whenever", Category: "", Priority: "urgent"},
		{Title: "   "},
	}, today)

	if len(drafts) != 2 {
		t.Fatalf("blank titles must be dropped, got %d drafts", len(drafts))
	}
	first := drafts[0]
	if first.DueDate != "2024-01-11" {
		t.Fatalf("drafts start tomorrow, got %s", first.DueDate)
	}
	if first.Recurrence != model.RecurrenceWeekly || first.Priority != model.PriorityHigh {
		t.Fatalf("mapping lost fields: %#v", first)
	}
	second := drafts[1]
	if second.Category != "General" || second.Priority != model.PriorityMedium {
		t.Fatalf("defaults not applied: %#v", second)
	}
	if second.Recurrence != model.RecurrenceNone {
		t.Fatalf("unknown frequency maps to none, got %s", second.Recurrence)
	}
}

func TestClientGenerateSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate-schedule" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tasks":[{"title":"Wipe counters","frequency":"daily"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	tasks, err := client.GenerateSchedule(context.Background(), "small flat, two cats")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Wipe counters" {
		t.Fatalf("unexpected tasks: %#v", tasks)
	}
}

func TestClientRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"Rate limit exceeded. Please try again later."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	if _, err := client.GenerateSchedule(context.Background(), "anything"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestClientUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	if _, err := client.GenerateSchedule(context.Background(), "anything"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAnthropicClientParsesCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Errorf("missing version header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"text":"{\"tasks\":[{\"title\":\"Scrub sink\",\"frequency\":\"weekly\"}]}"}]}`))
	}))
	defer srv.Close()

	client := NewAnthropicClient("test-key", 0)
	client.baseURL = srv.URL
	tasks, err := client.GenerateSchedule(context.Background(), "describe my kitchen")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Scrub sink" {
		t.Fatalf("unexpected tasks: %#v", tasks)
	}
}
