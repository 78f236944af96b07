package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyquest/backend/internal/llm"
)

func chatServer(t *testing.T, replies ...string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1)) - 1
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model          string `json:"model"`
			ResponseFormat struct {
				Type string `json:"type"`
			} `json:"response_format"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body.Model)
		assert.Equal(t, "json_object", body.ResponseFormat.Type)
		assert.Len(t, body.Messages, 2)

		reply := replies[min(n, len(replies)-1)]
		if reply == "500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": reply}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestCompleteJSON_Success(t *testing.T) {
	srv, calls := chatServer(t, "Sure! ```json\n{\"feedback\": \"nice {work}\", \"xp_reward\": 12}\n```")
	c := llm.NewClient(srv.URL, "gpt-4o-mini", "sk-test", time.Second)

	var out struct {
		Feedback string `json:"feedback"`
		XPReward int    `json:"xp_reward"`
	}
	require.NoError(t, c.CompleteJSON(context.Background(), "system", "prompt", &out))
	assert.Equal(t, "nice {work}", out.Feedback)
	assert.Equal(t, 12, out.XPReward)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCompleteJSON_RetriesOnGarbage(t *testing.T) {
	srv, calls := chatServer(t, "no json here", `{"ok": true}`)
	c := llm.NewClient(srv.URL, "gpt-4o-mini", "sk-test", time.Second)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.CompleteJSON(context.Background(), "s", "p", &out))
	assert.True(t, out.OK)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCompleteJSON_FailsAfterRetries(t *testing.T) {
	srv, calls := chatServer(t, "500")
	c := llm.NewClient(srv.URL, "gpt-4o-mini", "sk-test", time.Second)

	var out map[string]any
	err := c.CompleteJSON(context.Background(), "s", "p", &out)

	var llmErr *llm.Error
	require.True(t, errors.As(err, &llmErr))
	assert.Contains(t, llmErr.Reason, "failed after 2 attempts")
	assert.ErrorContains(t, err, "status 500")
	assert.Equal(t, int32(2), calls.Load())
}

func TestCompleteJSON_CancelledContext(t *testing.T) {
	c := llm.NewClient("http://127.0.0.1:0", "gpt-4o-mini", "", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out map[string]any
	err := c.CompleteJSON(ctx, "s", "p", &out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"text before {\"a\":{\"b\":2}} after", `{"a":{"b":2}}`},
		{`{"s":"brace } inside"}`, `{"s":"brace } inside"}`},
		{`{"s":"escaped \" quote"}`, `{"s":"escaped \" quote"}`},
		{"nothing", ""},
		{"{unterminated", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, llm.ExtractJSON(tt.in), tt.in)
	}
}
