package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/studyquest/backend/internal/domain/bossbattle"
	"github.com/studyquest/backend/internal/infrastructure/metrics"
	"github.com/studyquest/backend/internal/store"
)

// QuestionSource supplies the questions for a new battle.
type QuestionSource interface {
	Generate(ctx context.Context, total int, difficulty string) []bossbattle.Question
}

type battleStore interface {
	GetUser(ctx context.Context, username string) (*store.User, error)
	SettleBossBattle(ctx context.Context, b *store.BossBattle, now time.Time) (*store.Level, error)
	ListBossBattles(ctx context.Context, username string) ([]store.BossBattle, error)
}

// StartRequest carries the player's battle settings. Zero TimeLimit and
// empty Difficulty use the manager defaults.
type StartRequest struct {
	Total      int
	Difficulty string
	TimeLimit  time.Duration
}

// Battles runs boss battles on top of the in-memory manager and settles
// finished ones: the outcome is persisted and the XP credited.
type Battles struct {
	manager     *bossbattle.Manager
	questions   QuestionSource
	store       battleStore
	progression *Progression
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

func NewBattles(m *bossbattle.Manager, q QuestionSource, s battleStore, p *Progression, logger *slog.Logger, mt *metrics.Metrics) *Battles {
	return &Battles{
		manager:     m,
		questions:   q,
		store:       s,
		progression: p,
		logger:      logger,
		metrics:     mt,
	}
}

// Start opens a battle of at most bossbattle.BankSize() questions. When the
// question source returns fewer questions than asked, the battle is shorter.
func (b *Battles) Start(ctx context.Context, username string, req StartRequest) (bossbattle.QuestionView, error) {
	if _, err := b.store.GetUser(ctx, username); err != nil {
		return bossbattle.QuestionView{}, err
	}
	// manager.Start re-checks under its lock
	if b.manager.Active(username) {
		return bossbattle.QuestionView{}, bossbattle.ErrActiveBattle
	}

	total := min(req.Total, bossbattle.BankSize())
	questions := b.questions.Generate(ctx, total, req.Difficulty)

	view, err := b.manager.Start(username, bossbattle.StartOptions{
		Difficulty: req.Difficulty,
		TimeLimit:  req.TimeLimit,
	}, questions)
	if err != nil {
		return bossbattle.QuestionView{}, err
	}

	b.logger.Info("boss battle started", "user", username, "questions", view.Total, "difficulty", req.Difficulty)
	return view, nil
}

func (b *Battles) Question(ctx context.Context, username string) (bossbattle.QuestionView, *bossbattle.Result, error) {
	view, res, err := b.manager.Question(username)
	if err != nil || res == nil {
		return view, nil, err
	}
	return view, res, b.settle(ctx, res)
}

func (b *Battles) Answer(ctx context.Context, username string, choice int) (bossbattle.AnswerOutcome, *bossbattle.Result, error) {
	out, res, err := b.manager.Answer(username, choice)
	if err != nil || res == nil {
		return out, nil, err
	}
	return out, res, b.settle(ctx, res)
}

func (b *Battles) Status(ctx context.Context, username string) (bossbattle.Progress, *bossbattle.Result, error) {
	p, res, err := b.manager.Status(username)
	if err != nil || res == nil {
		return p, nil, err
	}
	return p, res, b.settle(ctx, res)
}

func (b *Battles) Forfeit(ctx context.Context, username string) (*bossbattle.Result, error) {
	res, err := b.manager.Forfeit(username)
	if err != nil {
		return nil, err
	}
	return res, b.settle(ctx, res)
}

// History lists the user's finished battles, most recent first.
func (b *Battles) History(ctx context.Context, username string) ([]store.BossBattle, error) {
	if _, err := b.store.GetUser(ctx, username); err != nil {
		return nil, err
	}
	return b.store.ListBossBattles(ctx, username)
}

// settle persists a finished battle together with its XP. The battle is
// already gone from the manager, so this runs even if the client left.
func (b *Battles) settle(ctx context.Context, res *bossbattle.Result) error {
	ctx = context.WithoutCancel(ctx)
	b.metrics.BattleEnded(string(res.Status))

	now := b.progression.Now()
	record := &store.BossBattle{
		User:           res.Username,
		Date:           now.UTC(),
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		XPReward:       res.XPReward,
		Difficulty:     res.Difficulty,
		Status:         string(res.Status),
		Completed:      true,
	}
	level, err := b.store.SettleBossBattle(ctx, record, now)
	if err != nil {
		b.logger.Error("failed to settle boss battle", "user", res.Username, "error", err)
		return err
	}
	b.progression.Credited(ctx, res.Username, res.XPReward, SourceBossBattle, level)

	b.logger.Info("boss battle ended",
		"user", res.Username,
		"status", res.Status,
		"score", res.Score,
		"xp_reward", res.XPReward,
	)
	return nil
}
