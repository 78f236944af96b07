package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// JSONCompleter asks a chat model for a JSON object and decodes it into out.
type JSONCompleter interface {
	CompleteJSON(ctx context.Context, system, prompt string, out any) error
}

// Client calls an OpenAI-compatible chat-completions endpoint
// (OpenAI, Ollama, LM Studio, vLLM, ...).
type Client struct {
	url    string       // e.g. "https://api.openai.com"
	model  string       // e.g. "gpt-4o-mini"
	apiKey string       // sent as a bearer token when set
	client *http.Client // reused across calls
}

// Compile-time check: *Client satisfies JSONCompleter.
var _ JSONCompleter = (*Client)(nil)

// Error is returned when a completion cannot be turned into the requested
// JSON value, so callers can tell a bad answer from an unreachable model.
type Error struct {
	Reason  string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("llm: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("llm: %s", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func NewClient(url, model, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		url:    url,
		model:  model,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

const maxRetries = 2

// CompleteJSON sends system and prompt as a two-message conversation in JSON
// mode. It retries once when the reply is not a usable JSON object.
func (c *Client) CompleteJSON(ctx context.Context, system, prompt string, out any) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return &Error{Reason: "context done", Wrapped: err}
		}

		content, err := c.callLLM(ctx, system, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSON(content)
		if jsonStr == "" {
			lastErr = &Error{Reason: "no JSON object found in LLM response"}
			continue
		}

		if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
			lastErr = &Error{Reason: "invalid JSON from LLM", Wrapped: err}
			continue
		}
		return nil
	}

	return &Error{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request and returns the raw text of the first choice.
func (c *Client) callLLM(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.7,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("LLM returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := chatResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// extractJSON finds the outermost JSON object in a string.
// It handles nested braces and skips braces inside quoted strings, so
// replies wrapped in markdown fences or prose still parse.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
