package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/studyquest/backend/internal/infrastructure/metrics"
	"github.com/studyquest/backend/internal/leaderboard"
	"github.com/studyquest/backend/internal/store"
)

// XP sources, used as the metrics label and in logs.
const (
	SourceProgress   = "progress"
	SourceQuest      = "quest"
	SourceBossBattle = "boss_battle"
)

type xpCreditor interface {
	CreditXP(ctx context.Context, username string, amount int, now time.Time) (*store.Level, error)
}

// Progression is the single place XP gets credited. The database is the
// source of truth; the ranker is refreshed afterwards on a best-effort basis.
type Progression struct {
	store   xpCreditor
	ranker  leaderboard.Ranker
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewProgression(s xpCreditor, r leaderboard.Ranker, logger *slog.Logger, m *metrics.Metrics) *Progression {
	return &Progression{
		store:   s,
		ranker:  r,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Award credits amount XP to username and returns the refreshed level.
func (p *Progression) Award(ctx context.Context, username string, amount int, source string) (*store.Level, error) {
	level, err := p.store.CreditXP(ctx, username, amount, p.now())
	if err != nil {
		return nil, err
	}
	p.Credited(ctx, username, amount, source, level)
	return level, nil
}

// Credited runs after an XP credit has been committed, either by Award or
// by a store call that wrote a record and its XP in one transaction.
func (p *Progression) Credited(ctx context.Context, username string, amount int, source string, level *store.Level) {
	p.metrics.XPAwarded(source, amount)
	p.logger.Info("xp awarded",
		"user", username,
		"amount", amount,
		"source", source,
		"total_xp", level.TotalXP,
		"level", level.CurrentLevel,
	)

	if err := p.ranker.Record(ctx, username, level.TotalXP); err != nil {
		p.logger.Error("failed to update ranking", "user", username, "error", err)
	}
}

// Now is the clock used for XP credits.
func (p *Progression) Now() time.Time {
	return p.now()
}
