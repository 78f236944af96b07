package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/studyquest/backend/internal/domain/bossbattle"
	"github.com/studyquest/backend/internal/infrastructure/metrics"
	"github.com/studyquest/backend/internal/llm"
)

const (
	maxChoices = 4
	minChoices = 2
)

const systemPrompt = `Create a short quiz for coding students. ` +
	`Return EXACTLY this JSON shape: ` +
	`{"questions":[{"question":"string","choices":["A","B","C","D"],"answer_idx":0}]}. ` +
	`Use clear, beginner-friendly tech topics. Ensure four choices and answer_idx points to the correct choice.`

// Generator builds boss-battle questions, preferring the language model and
// falling back to the built-in bank.
type Generator struct {
	llm     llm.JSONCompleter
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(completer llm.JSONCompleter, logger *slog.Logger, m *metrics.Metrics) *Generator {
	return &Generator{llm: completer, logger: logger, metrics: m}
}

type rawQuiz struct {
	Questions []rawQuestion `json:"questions"`
}

type rawQuestion struct {
	Question string          `json:"question"`
	Choices  []any           `json:"choices"`
	Answer   json.RawMessage `json:"answer_idx"`
}

// Generate returns between 1 and total questions. Never returns an empty
// slice for total >= 1.
func (g *Generator) Generate(ctx context.Context, total int, difficulty string) []bossbattle.Question {
	if g.llm == nil {
		return bossbattle.StaticQuestions(total)
	}

	prompt := fmt.Sprintf("Generate %d questions.", total)
	if difficulty != "" {
		prompt = fmt.Sprintf("Generate %d %s questions.", total, difficulty)
	}

	var quiz rawQuiz
	if err := g.llm.CompleteJSON(ctx, systemPrompt, prompt, &quiz); err != nil {
		g.logger.Warn("AI question generation failed, falling back to static set", "error", err)
		g.metrics.LLMRequest("quiz", "fallback")
		return bossbattle.StaticQuestions(total)
	}

	questions := clean(quiz.Questions, total)
	if len(questions) == 0 {
		g.logger.Warn("AI question generation returned no usable questions, falling back to static set")
		g.metrics.LLMRequest("quiz", "fallback")
		return bossbattle.StaticQuestions(total)
	}

	g.metrics.LLMRequest("quiz", "ok")
	return questions
}

// clean drops malformed entries and normalises the rest.
func clean(raw []rawQuestion, total int) []bossbattle.Question {
	var out []bossbattle.Question
	for _, rq := range raw {
		if len(out) >= total {
			break
		}

		question := strings.TrimSpace(rq.Question)
		choices := stringChoices(rq.Choices)
		if question == "" || len(choices) < minChoices {
			continue
		}
		if len(choices) > maxChoices {
			choices = choices[:maxChoices]
		}

		answer := parseIndex(rq.Answer)
		if answer < 0 || answer >= len(choices) {
			answer = 0
		}

		out = append(out, bossbattle.Question{
			Question:  question,
			Choices:   choices,
			AnswerIdx: answer,
		})
	}
	return out
}

func stringChoices(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		switch v := c.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out = append(out, strconv.FormatBool(v))
		}
	}
	return out
}

func parseIndex(raw json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}
