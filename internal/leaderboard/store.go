package leaderboard

import (
	"context"
	"errors"

	"github.com/studyquest/backend/internal/store"
)

// snapshotReader is the slice of store.Store the StoreRanker needs.
type snapshotReader interface {
	TopLeaderboard(ctx context.Context, limit int) ([]store.Leaderboard, error)
	LeaderboardRank(ctx context.Context, username string) (int, *store.Leaderboard, error)
}

// StoreRanker reads the leaderboard table. Record is a no-op because the
// table is updated together with the user's XP.
type StoreRanker struct {
	store snapshotReader
}

var _ Ranker = (*StoreRanker)(nil)

func NewStoreRanker(s snapshotReader) *StoreRanker {
	return &StoreRanker{store: s}
}

func (r *StoreRanker) Record(context.Context, string, int) error {
	return nil
}

func (r *StoreRanker) Top(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.store.TopLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}
	return Entries(rows), nil
}

func (r *StoreRanker) Rank(ctx context.Context, username string) (Entry, error) {
	rank, row, err := r.store.LeaderboardRank(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return Entry{Username: username}, nil
	}
	if err != nil {
		return Entry{}, err
	}
	return Entry{Username: row.User, TotalXP: int64(row.TotalXP), Rank: int64(rank)}, nil
}

// Entries converts ordered snapshot rows into ranked entries.
func Entries(rows []store.Leaderboard) []Entry {
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry{
			Username: row.User,
			TotalXP:  int64(row.TotalXP),
			Rank:     int64(i) + 1,
		}
	}
	return entries
}
