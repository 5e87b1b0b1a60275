package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1/messages"
	anthropicModel   = "claude-sonnet-4-20250514"
	anthropicVersion = "2023-06-01"
	maxTokens        = 2048

	maxRetries   = 3
	initialDelay = 1 * time.Second
)

const systemPrompt = `You are a helpful house cleaning schedule assistant for the "Squeaky Clean" app.
When the user describes their cleaning needs, generate a structured list of cleaning tasks.

Return ONLY valid JSON — no markdown, no explanation — in this exact format:
{
  "tasks": [
    {
      "title": "Task name",
      "frequency": "weekly|daily|biweekly|monthly|quarterly|annually",
      "category": "Kitchen|Bathroom|Bedroom|Living Room|Outdoor|Laundry|Garage|General",
      "priority": "low|medium|high",
      "notes": "Optional helpful tip or detail"
    }
  ]
}

Guidelines:
- Generate 5-15 practical, actionable tasks
- Use clear, concise task titles
- Assign appropriate categories from the list above
- Set realistic frequencies
- Include helpful tips in the notes field when relevant
- Prioritize based on hygiene impact and frequency needs
- Be practical and specific, not generic`

// AnthropicClient calls the Anthropic messages API and extracts chore
// suggestions from the completion text.
type AnthropicClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAnthropicClient(apiKey string, timeout time.Duration) *AnthropicClient {
	return &AnthropicClient{
		apiKey:  apiKey,
		baseURL: anthropicBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// GenerateSchedule sends the user's description and returns the parsed
// suggestions. Transient upstream failures are retried with exponential
// backoff; anything still failing surfaces as ErrUnavailable.
func (c *AnthropicClient) GenerateSchedule(ctx context.Context, prompt string) ([]Suggestion, error) {
	if err := ValidatePrompt(prompt); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("suggest: api key not configured")
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     anthropicModel,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("suggest: marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := initialDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("suggest: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", anthropicVersion)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("suggest: upstream status %d: %s", resp.StatusCode, respBody)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
		}

		var parsed anthropicResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return nil, fmt.Errorf("suggest: decode response: %w", err)
		}
		content := ""
		if len(parsed.Content) > 0 {
			content = parsed.Content[0].Text
		}
		return ParseSuggestions(content)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

var embeddedJSON = regexp.MustCompile(`(?s)\{.*\}`)

// ParseSuggestions extracts the task list from completion text. The
// model is told to emit bare JSON, but completions sometimes wrap it in
// prose or fences, so a second pass pulls out the first embedded object.
func ParseSuggestions(content string) ([]Suggestion, error) {
	if tasks, err := decodeSuggestions([]byte(content)); err == nil {
		return tasks, nil
	}
	match := embeddedJSON.FindString(content)
	if match == "" {
		return nil, ErrMalformedResponse
	}
	tasks, err := decodeSuggestions([]byte(match))
	if err != nil {
		return nil, ErrMalformedResponse
	}
	return tasks, nil
}

func decodeSuggestions(data []byte) ([]Suggestion, error) {
	var wrapper struct {
		Tasks []Suggestion `json:"tasks"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Tasks != nil {
		return wrapper.Tasks, nil
	}
	var bare []Suggestion
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}
