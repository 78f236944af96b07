package api_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyquest/backend/internal/api"
	"github.com/studyquest/backend/internal/store"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestLogProgress(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	rec := s.do(http.MethodPost, "/progress", map[string]any{
		"username":        "alice",
		"durationMinutes": 45,
		"note":            "chapter 3",
		"date":            "2024-03-01T09:30:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[api.ProgressResponse](t, rec)
	assert.Equal(t, 45, resp.Progress.DurationMinutes)
	assert.Equal(t, 45, resp.Progress.XPGained)
	require.NotNil(t, resp.Progress.Reflection)
	assert.Equal(t, "chapter 3", *resp.Progress.Reflection)
	require.NotNil(t, resp.Level)
	assert.Equal(t, 45, resp.Level.TotalXP)
	assert.Equal(t, 55, resp.Level.XPToNext)
}

func TestLogProgress_XPBounds(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	rec := s.doForm(http.MethodPost, "/progress", "user=alice&duration=2")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 5, decode[api.ProgressResponse](t, rec).Progress.XPGained)

	rec = s.doForm(http.MethodPost, "/progress", "user=alice&duration=600")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[api.ProgressResponse](t, rec)
	assert.Equal(t, 120, resp.Progress.XPGained)
	assert.Equal(t, 125, resp.Level.TotalXP)
	assert.Equal(t, 2, resp.Level.CurrentLevel)
}

func TestLogProgress_Errors(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"missing user", map[string]any{"duration_minutes": 10}, http.StatusBadRequest},
		{"missing duration", map[string]any{"user": "alice"}, http.StatusBadRequest},
		{"zero duration", map[string]any{"user": "alice", "duration_minutes": 0}, http.StatusBadRequest},
		{"over a day", map[string]any{"user": "alice", "duration_minutes": 1441}, http.StatusBadRequest},
		{"fractional", map[string]any{"user": "alice", "duration_minutes": 1.5}, http.StatusBadRequest},
		{"bad date", map[string]any{"user": "alice", "duration_minutes": 10, "date": "yesterday"}, http.StatusBadRequest},
		{"unknown user", map[string]any{"user": "bob", "duration_minutes": 10}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/progress", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestListProgress(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	rec := s.do(http.MethodGet, "/progress?user=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for _, day := range []string{"2024-03-01", "2024-03-05", "2024-03-03"} {
		s.do(http.MethodPost, "/progress", map[string]any{"user": "alice", "duration": 20, "date": day})
	}

	rec = s.do(http.MethodGet, "/progress?user=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessions := decode[[]store.Progress](t, rec)
	require.Len(t, sessions, 3)
	assert.Equal(t, "2024-03-05", sessions[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", sessions[2].Date.Format("2006-01-02"))

	rec = s.do(http.MethodGet, "/progress?user=bob", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
