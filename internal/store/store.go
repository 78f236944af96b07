package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// QuestFilter narrows ListQuests. Zero values match everything.
type QuestFilter struct {
	AssignedTo string
	DailyOnly  bool
}

// Store is the persistence surface used by the HTTP layer and services.
type Store interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, username string) (*User, error)

	CreateProgress(ctx context.Context, p *Progress) error
	LogProgress(ctx context.Context, p *Progress, now time.Time) (*Level, error)
	ListProgress(ctx context.Context, username string) ([]Progress, error)

	CreateReflection(ctx context.Context, r *TextAIReflection) error
	ListReflections(ctx context.Context, username string) ([]TextAIReflection, error)
	GetReflection(ctx context.Context, id uint) (*TextAIReflection, error)
	DeleteReflection(ctx context.Context, id uint) error

	SettleBossBattle(ctx context.Context, b *BossBattle, now time.Time) (*Level, error)
	ListBossBattles(ctx context.Context, username string) ([]BossBattle, error)

	CreateQuest(ctx context.Context, q *Quest) error
	GetQuest(ctx context.Context, id uint) (*Quest, error)
	ListQuests(ctx context.Context, f QuestFilter) ([]Quest, error)
	CompleteQuest(ctx context.Context, id uint, username string, now time.Time) (*Quest, *Level, error)
	GetLevel(ctx context.Context, username string) (*Level, error)

	GetAvatar(ctx context.Context, username string) (*Avatar, error)
	UpsertAvatar(ctx context.Context, a *Avatar) error
	CreateBadge(ctx context.Context, b *Badge) error
	ListBadges(ctx context.Context) ([]Badge, error)

	CreateFriend(ctx context.Context, f *Friend) error
	ListFriends(ctx context.Context, username string) ([]Friend, error)

	CreditXP(ctx context.Context, username string, amount int, now time.Time) (*Level, error)
	TopLeaderboard(ctx context.Context, limit int) ([]Leaderboard, error)
	LeaderboardRank(ctx context.Context, username string) (int, *Leaderboard, error)
}
