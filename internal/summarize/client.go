// Package summarize implements the resilient summarization pipeline: prompt
// construction, a retrying chat-completions client with a classified failure
// taxonomy, schema repair of backend output, and deterministic fallback
// summaries.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"paperbuddy/internal/config"
)

const (
	apiURL = "https://api.openai.com/v1/chat/completions"

	systemInstruction = "You are an expert teacher who explains complex academic papers in simple, kid-friendly language. Always respond with valid JSON."
)

// Client calls the generative-text backend under a bounded retry policy
// with per-failure-class backoff.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	client     *http.Client
	maxRetries int
	unit       time.Duration
	sleep      func(time.Duration)
}

// NewClient creates a backend client from the summarizer config.
func NewClient(cfg *config.SummarizerConfig) *Client {
	return newClient(cfg, apiURL, time.Second, time.Sleep)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint
// with a custom backoff unit and sleep function (for testing).
func NewClientWithEndpoint(cfg *config.SummarizerConfig, endpoint string, unit time.Duration, sleep func(time.Duration)) *Client {
	return newClient(cfg, endpoint, unit, sleep)
}

func newClient(cfg *config.SummarizerConfig, endpoint string, unit time.Duration, sleep func(time.Duration)) *Client {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      model,
		endpoint:   endpoint,
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		unit:       unit,
		sleep:      sleep,
	}
}

// Complete sends the prompt and returns the backend's structured reply.
// Attempt n may retry while n < maxRetries, sleeping a backoff keyed to the
// failure class; once retries are exhausted the classified *BackendError is
// returned. Complete never panics and never returns an unclassified error.
func (c *Client) Complete(ctx context.Context, prompt string) (map[string]any, error) {
	for attempt := 0; ; attempt++ {
		out, err := c.attempt(ctx, prompt)
		if err == nil {
			return out, nil
		}
		if attempt >= c.maxRetries {
			return nil, err
		}
		var be *BackendError
		errors.As(err, &be)
		log.Printf("summarize: attempt %d failed (%s), retrying: %v", attempt+1, be.Kind, be.Err)
		c.sleep(c.backoff(be.Kind, attempt))
	}
}

// backoff returns the delay before retrying after a failure of the given
// kind on attempt n: timeouts back off exponentially, rate limits linearly,
// malformed output and everything else use short fixed delays.
func (c *Client) backoff(kind FailureKind, attempt int) time.Duration {
	var units int
	switch kind {
	case FailTimeout:
		units = 1 << attempt
	case FailRateLimit:
		units = 5 * (attempt + 1)
	case FailBadFormat:
		units = 1
	default:
		units = 2
	}
	return time.Duration(units) * c.unit
}

func (c *Client) attempt(ctx context.Context, prompt string) (map[string]any, *BackendError) {
	reqBody := map[string]any{
		"model":       c.model,
		"temperature": 0.7,
		"max_tokens":  2000,
		"messages": []map[string]any{
			{"role": "system", "content": systemInstruction},
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]any{"type": "json_object"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &BackendError{Kind: FailOther, Err: fmt.Errorf("marshaling request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, &BackendError{Kind: FailOther, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &BackendError{Kind: FailTimeout, Err: err}
		}
		return nil, &BackendError{Kind: FailOther, Err: fmt.Errorf("calling backend: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Kind: FailOther, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("backend API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 200))
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, &BackendError{Kind: FailRateLimit, Err: baseErr}
		}
		if resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusGatewayTimeout {
			return nil, &BackendError{Kind: FailTimeout, Err: baseErr}
		}
		return nil, &BackendError{Kind: FailOther, Err: baseErr}
	}

	return parseReply(respBody)
}

// apiResponse models the chat-completions API response envelope.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseReply(body []byte) (map[string]any, *BackendError) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &BackendError{Kind: FailBadFormat, Err: fmt.Errorf("unmarshaling response envelope: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return nil, &BackendError{Kind: FailOther, Err: errors.New("empty response from backend: no choices")}
	}
	if resp.Choices[0].FinishReason == "length" {
		return nil, &BackendError{Kind: FailOther, Err: errors.New("output truncated: response exceeded token limit")}
	}

	text := resp.Choices[0].Message.Content
	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &BackendError{Kind: FailBadFormat, Err: fmt.Errorf("parsing structured output: %w (raw: %s)", err, truncate(text, 200))}
	}
	return raw, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
