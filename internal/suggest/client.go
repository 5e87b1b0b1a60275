package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the schedule proxy on behalf of the TUI. It never
// holds API credentials; those live with the proxy.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Tasks []Suggestion `json:"tasks"`
	Error string       `json:"error"`
}

func (c *Client) GenerateSchedule(ctx context.Context, prompt string) ([]Suggestion, error) {
	if err := ValidatePrompt(prompt); err != nil {
		return nil, err
	}
	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("suggest: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-schedule", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("suggest: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var parsed generateResponse
	decodeErr := json.Unmarshal(respBody, &parsed)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusBadRequest:
		if decodeErr == nil && parsed.Error != "" {
			return nil, fmt.Errorf("suggest: %s", parsed.Error)
		}
		return nil, fmt.Errorf("suggest: rejected request")
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, ErrMalformedResponse
	}
	return parsed.Tasks, nil
}
