package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/studyquest/backend/internal/infrastructure/metrics"
	"github.com/studyquest/backend/internal/llm"
)

const (
	DefaultXP = 10
	MinXP     = 5
	MaxXP     = 25

	summaryRunes = 120

	defaultFeedback   = "Keep going – each reflection helps you improve."
	challengeFeedback = "It sounds like you faced challenges today — remember, progress is built through persistence."
	praiseFeedback    = "Fantastic work! Keep maintaining that focused mindset."
	neutralFeedback   = "Keep reflecting — awareness is the key to consistent improvement."
)

const systemPrompt = `You are a friendly study mentor for students using a gamified app. ` +
	`Given the student's reflection about their study session, ` +
	`return a SHORT feedback message, a one-sentence summary, ` +
	`and an integer XP reward between 5 and 25.

Respond ONLY in JSON with this exact shape:
{
  "feedback": "string",
  "summary": "string",
  "xp_reward": 10
}`

var (
	challengeWords = []string{"tired", "hard", "struggle", "stuck"}
	praiseWords    = []string{"happy", "productive", "focused", "good", "great"}
)

// Feedback is the mentor's answer to one reflection.
type Feedback struct {
	Feedback string
	Summary  string
	XPReward int
}

// Mentor produces reflection feedback. With a nil completer every call
// uses the keyword heuristic.
type Mentor struct {
	llm     llm.JSONCompleter
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(completer llm.JSONCompleter, logger *slog.Logger, m *metrics.Metrics) *Mentor {
	if completer == nil {
		logger.Warn("text AI mentor running in fallback mode (no LLM configured)")
	}
	return &Mentor{llm: completer, logger: logger, metrics: m}
}

type llmFeedback struct {
	Feedback string          `json:"feedback"`
	Summary  string          `json:"summary"`
	XPReward json.RawMessage `json:"xp_reward"`
}

// Review returns feedback for text. It never fails: any problem with the
// language model degrades to the heuristic.
func (m *Mentor) Review(ctx context.Context, text string) Feedback {
	if m.llm == nil {
		return Heuristic(text)
	}

	var out llmFeedback
	if err := m.llm.CompleteJSON(ctx, systemPrompt, text, &out); err != nil {
		m.logger.Warn("mentor LLM call failed, using heuristic", "error", err)
		m.metrics.LLMRequest("mentor", "fallback")
		return Heuristic(text)
	}
	m.metrics.LLMRequest("mentor", "ok")

	fb := Feedback{
		Feedback: strings.TrimSpace(out.Feedback),
		Summary:  strings.TrimSpace(out.Summary),
		XPReward: ClampXP(parseXP(out.XPReward)),
	}
	if fb.Feedback == "" {
		fb.Feedback = defaultFeedback
	}
	if fb.Summary == "" {
		fb.Summary = Summarize(text)
	}
	return fb
}

// parseXP accepts a JSON number or an integer string and returns a value
// already inside [MinXP, MaxXP]. Null or anything else yields DefaultXP.
func parseXP(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return DefaultXP
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		// clamp before converting to int
		return int(math.Max(MinXP, math.Min(MaxXP, math.Trunc(n))))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return int(max(MinXP, min(MaxXP, v)))
		}
	}
	return DefaultXP
}

func ClampXP(xp int) int {
	return max(MinXP, min(MaxXP, xp))
}

// Heuristic is the offline mentor: a keyword match on the lower-cased text.
func Heuristic(text string) Feedback {
	lower := strings.ToLower(text)

	feedback := neutralFeedback
	switch {
	case containsAny(lower, challengeWords):
		feedback = challengeFeedback
	case containsAny(lower, praiseWords):
		feedback = praiseFeedback
	}

	return Feedback{
		Feedback: feedback,
		Summary:  Summarize(text),
		XPReward: DefaultXP,
	}
}

// Summarize keeps the first 120 characters of text and marks the cut.
func Summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryRunes {
		return text
	}
	return string(runes[:summaryRunes]) + "..."
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
