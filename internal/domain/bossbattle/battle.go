package bossbattle

import (
	"time"
)

// Status is the lifecycle state of a battle. Every status except
// StatusActive is terminal.
type Status string

const (
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusOutOfLives Status = "out_of_lives"
	StatusTimeout    Status = "timeout"
	StatusForfeit    Status = "forfeit"
)

const (
	XPPerCorrect      = 20
	DefaultLives      = 3
	DefaultTotal      = 5
	DefaultTimeout    = 180 * time.Second
	DefaultDifficulty = "medium"

	FeedbackCorrect = "Correct! +20 XP"
	FeedbackWrong   = "Wrong! -1 life"
)

// Battle is the in-memory state of one user's running quiz.
type Battle struct {
	Username   string
	Difficulty string
	StartedAt  time.Time
	TimeLimit  time.Duration
	Lives      int
	Score      int
	Index      int
	Total      int
	Questions  []Question
}

// Remaining is the whole number of seconds left at now, never negative.
func (b *Battle) Remaining(now time.Time) int {
	left := b.TimeLimit - now.Sub(b.StartedAt)
	if left <= 0 {
		return 0
	}
	return int(left / time.Second)
}

func (b *Battle) XPReward() int {
	return b.Score * XPPerCorrect
}

// view describes the question at the current index.
func (b *Battle) view(now time.Time) QuestionView {
	q := b.Questions[b.Index]
	return QuestionView{
		Number:         b.Index + 1,
		Total:          b.Total,
		Question:       q.Question,
		Choices:        append([]string(nil), q.Choices...),
		Lives:          b.Lives,
		Score:          b.Score,
		TimerRemaining: b.Remaining(now),
	}
}

func (b *Battle) end(status Status) *Result {
	return &Result{
		Username:       b.Username,
		Difficulty:     b.Difficulty,
		Status:         status,
		Score:          b.Score,
		XPReward:       b.XPReward(),
		TotalQuestions: b.Total,
		LivesRemaining: b.Lives,
	}
}

// QuestionView is what a player sees of the current question.
type QuestionView struct {
	Number         int
	Total          int
	Question       string
	Choices        []string
	Lives          int
	Score          int
	TimerRemaining int
}

// AnswerOutcome is returned for an answer that did not end the battle.
type AnswerOutcome struct {
	Correct        bool
	Feedback       string
	Lives          int
	Score          int
	TimerRemaining int
	Next           QuestionView
}

// Progress is the non-terminal status snapshot.
type Progress struct {
	Lives          int
	Score          int
	QuestionNumber int
	TotalQuestions int
	TimerRemaining int
}

// Result is produced exactly once per battle, when it reaches a terminal
// status. The battle is gone from the Manager by the time a Result exists.
type Result struct {
	Username       string
	Difficulty     string
	Status         Status
	Score          int
	XPReward       int
	TotalQuestions int
	LivesRemaining int
}
