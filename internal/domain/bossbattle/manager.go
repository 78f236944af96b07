package bossbattle

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNoBattle     = errors.New("no active boss battle")
	ErrActiveBattle = errors.New("an active boss battle already exists")
	ErrNoQuestions  = errors.New("boss battle needs at least one question")
)

// StartOptions are the per-battle settings chosen by the player.
// Zero values fall back to the Manager defaults.
type StartOptions struct {
	Difficulty string
	TimeLimit  time.Duration
}

// Manager owns every running battle, keyed by username. All methods are
// safe for concurrent use; operations on one user's battle are serialised.
type Manager struct {
	mu      sync.Mutex
	battles map[string]*Battle

	lives     int
	timeLimit time.Duration
	now       func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithLives(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.lives = n
		}
	}
}

func WithDefaultTimeLimit(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeLimit = d
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		battles:   make(map[string]*Battle),
		lives:     DefaultLives,
		timeLimit: DefaultTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Active reports whether username has a running battle.
func (m *Manager) Active(username string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.battles[username]
	return ok
}

// Start registers a new battle over questions and returns its first question.
// The battle length is len(questions).
func (m *Manager) Start(username string, opts StartOptions, questions []Question) (QuestionView, error) {
	if len(questions) == 0 {
		return QuestionView{}, ErrNoQuestions
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.battles[username]; ok {
		return QuestionView{}, ErrActiveBattle
	}

	limit := opts.TimeLimit
	if limit <= 0 {
		limit = m.timeLimit
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	b := &Battle{
		Username:   username,
		Difficulty: difficulty,
		StartedAt:  m.now(),
		TimeLimit:  limit,
		Lives:      m.lives,
		Total:      len(questions),
		Questions:  questions,
	}
	m.battles[username] = b
	return b.view(b.StartedAt), nil
}

// Question returns the current question, or the Result if the battle has
// run out of time, lives or questions.
func (m *Manager) Question(username string) (QuestionView, *Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.battles[username]
	if !ok {
		return QuestionView{}, nil, ErrNoBattle
	}

	now := m.now()
	switch {
	case b.Remaining(now) == 0:
		return QuestionView{}, m.finish(b, StatusTimeout), nil
	case b.Lives <= 0:
		return QuestionView{}, m.finish(b, StatusOutOfLives), nil
	case b.Index >= b.Total:
		return QuestionView{}, m.finish(b, StatusCompleted), nil
	}
	return b.view(now), nil, nil
}

// Answer grades choice against the current question and advances the battle.
// When the answer ends the battle only the Result is returned.
func (m *Manager) Answer(username string, choice int) (AnswerOutcome, *Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.battles[username]
	if !ok {
		return AnswerOutcome{}, nil, ErrNoBattle
	}

	if b.Remaining(m.now()) == 0 {
		return AnswerOutcome{}, m.finish(b, StatusTimeout), nil
	}
	if b.Index >= b.Total {
		return AnswerOutcome{}, m.finish(b, StatusCompleted), nil
	}

	correct := choice == b.Questions[b.Index].AnswerIdx
	feedback := FeedbackWrong
	if correct {
		b.Score++
		feedback = FeedbackCorrect
	} else {
		b.Lives--
	}
	b.Index++

	if b.Lives <= 0 {
		return AnswerOutcome{}, m.finish(b, StatusOutOfLives), nil
	}
	if b.Index >= b.Total {
		return AnswerOutcome{}, m.finish(b, StatusCompleted), nil
	}

	now := m.now()
	return AnswerOutcome{
		Correct:        correct,
		Feedback:       feedback,
		Lives:          b.Lives,
		Score:          b.Score,
		TimerRemaining: b.Remaining(now),
		Next:           b.view(now),
	}, nil, nil
}

// Status reports progress without advancing the battle. An expired battle
// is ended with StatusTimeout.
func (m *Manager) Status(username string) (Progress, *Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.battles[username]
	if !ok {
		return Progress{}, nil, ErrNoBattle
	}

	remaining := b.Remaining(m.now())
	if remaining == 0 {
		return Progress{}, m.finish(b, StatusTimeout), nil
	}

	return Progress{
		Lives:          b.Lives,
		Score:          b.Score,
		QuestionNumber: min(b.Index+1, b.Total),
		TotalQuestions: b.Total,
		TimerRemaining: remaining,
	}, nil, nil
}

// Forfeit ends the battle at the player's request.
func (m *Manager) Forfeit(username string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.battles[username]
	if !ok {
		return nil, ErrNoBattle
	}
	return m.finish(b, StatusForfeit), nil
}

// finish removes b and builds its Result. Callers hold m.mu.
func (m *Manager) finish(b *Battle, status Status) *Result {
	delete(m.battles, b.Username)
	return b.end(status)
}
