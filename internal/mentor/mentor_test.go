package mentor_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studyquest/backend/internal/infrastructure/logging/logtest"
	"github.com/studyquest/backend/internal/mentor"
)

// stubCompleter decodes a canned reply, or fails with err.
type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) CompleteJSON(_ context.Context, system, prompt string, out any) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.reply), out)
}

func TestHeuristic_Keywords(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I was so TIRED today", "It sounds like you faced challenges today — remember, progress is built through persistence."},
		{"got stuck but felt happy", "It sounds like you faced challenges today — remember, progress is built through persistence."},
		{"Very productive morning", "Fantastic work! Keep maintaining that focused mindset."},
		{"Read two chapters", "Keep reflecting — awareness is the key to consistent improvement."},
	}
	for _, tt := range tests {
		fb := mentor.Heuristic(tt.text)
		assert.Equal(t, tt.want, fb.Feedback, tt.text)
		assert.Equal(t, 10, fb.XPReward)
		assert.Equal(t, tt.text, fb.Summary)
	}
}

func TestSummarize(t *testing.T) {
	long := strings.Repeat("é", 130)
	got := mentor.Summarize(long)
	assert.Equal(t, strings.Repeat("é", 120)+"...", got)

	exact := strings.Repeat("a", 120)
	assert.Equal(t, exact, mentor.Summarize(exact))
}

func TestClampXP(t *testing.T) {
	assert.Equal(t, 5, mentor.ClampXP(-3))
	assert.Equal(t, 25, mentor.ClampXP(99))
	assert.Equal(t, 17, mentor.ClampXP(17))
}

func TestReview_NoLLMUsesHeuristic(t *testing.T) {
	m := mentor.New(nil, logtest.New(t), nil)
	fb := m.Review(context.Background(), "great focus")
	assert.Equal(t, "Fantastic work! Keep maintaining that focused mindset.", fb.Feedback)
}

func TestReview_LLMReply(t *testing.T) {
	stub := &stubCompleter{reply: `{"feedback":"Solid work","summary":"Studied trees","xp_reward":18}`}
	m := mentor.New(stub, logtest.New(t), nil)

	fb := m.Review(context.Background(), "I studied binary trees")
	assert.Equal(t, mentor.Feedback{Feedback: "Solid work", Summary: "Studied trees", XPReward: 18}, fb)
	assert.Equal(t, 1, stub.calls)
}

func TestReview_LLMReplyIsNormalised(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  mentor.Feedback
	}{
		{
			name:  "string xp clamped high",
			reply: `{"feedback":"ok","summary":"s","xp_reward":"40"}`,
			want:  mentor.Feedback{Feedback: "ok", Summary: "s", XPReward: 25},
		},
		{
			name:  "unparseable xp defaults",
			reply: `{"feedback":"ok","summary":"s","xp_reward":"lots"}`,
			want:  mentor.Feedback{Feedback: "ok", Summary: "s", XPReward: 10},
		},
		{
			name:  "null xp defaults",
			reply: `{"feedback":"ok","summary":"s","xp_reward":null}`,
			want:  mentor.Feedback{Feedback: "ok", Summary: "s", XPReward: 10},
		},
		{
			name:  "huge xp clamped high",
			reply: `{"feedback":"ok","summary":"s","xp_reward":1e300}`,
			want:  mentor.Feedback{Feedback: "ok", Summary: "s", XPReward: 25},
		},
		{
			name:  "huge negative xp clamped low",
			reply: `{"feedback":"ok","summary":"s","xp_reward":-1e300}`,
			want:  mentor.Feedback{Feedback: "ok", Summary: "s", XPReward: 5},
		},
		{
			name:  "out of range string clamped high",
			reply: `{"feedback":"ok","summary":"s","xp_reward":"99999999999999999999"}`,
			want:  mentor.Feedback{Feedback: "ok", Summary: "s", XPReward: 25},
		},
		{
			name:  "missing fields",
			reply: `{"xp_reward":1}`,
			want:  mentor.Feedback{Feedback: "Keep going – each reflection helps you improve.", Summary: "short note", XPReward: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mentor.New(&stubCompleter{reply: tt.reply}, logtest.New(t), nil)
			assert.Equal(t, tt.want, m.Review(context.Background(), "short note"))
		})
	}
}

func TestReview_LLMFailureFallsBack(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	m := mentor.New(stub, logtest.New(t), nil)

	fb := m.Review(context.Background(), "I feel stuck on recursion")
	assert.Equal(t, "It sounds like you faced challenges today — remember, progress is built through persistence.", fb.Feedback)
	assert.Equal(t, 10, fb.XPReward)
}
