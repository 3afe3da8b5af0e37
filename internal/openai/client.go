// Package openai is a minimal chat-completions client. It uses raw net/http
// to avoid pulling in the OpenAI SDK for a single endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lg/fitness-plan-go-api/internal/planner"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultTimeout = 2 * time.Minute
)

// Options configures a Client. Zero values pick the defaults.
type Options struct {
	BaseURL    string // overridable for tests
	HTTPClient *http.Client
}

// Client implements planner.Completer against /v1/chat/completions.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ planner.Completer = (*Client)(nil)

// NewClient builds a Client.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, client: client}
}

/* ─── Wire types ─────────────────────────────────────────────────────── */

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// StatusError is returned for any non-200 answer (bad key, quota, outage).
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openai returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("openai returned status %d: %s", e.StatusCode, e.Message)
}

/* ─── Completion call ────────────────────────────────────────────────── */

// Complete sends one system+user conversation and returns the content of the
// first choice exactly as received.
func (c *Client) Complete(ctx context.Context, apiKey string, prompt planner.Prompt, params planner.CompletionParams) (string, error) {
	reqBody := chatRequest{
		Model: params.Model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(respBytes)}
	}

	var result chatResponse
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return result.Choices[0].Message.Content, nil
}

// errorMessage pulls error.message out of an OpenAI error body, falling back
// to the raw body trimmed to a loggable length.
func errorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
