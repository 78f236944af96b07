package leaderboard

import "context"

// Entry is one ranked user. Rank is 1-based; 0 means the user is unranked.
type Entry struct {
	Username string `json:"username"`
	TotalXP  int64  `json:"total_xp"`
	Rank     int64  `json:"rank"`
}

// Ranker orders users by total XP.
type Ranker interface {
	Record(ctx context.Context, username string, totalXP int) error
	Top(ctx context.Context, limit int) ([]Entry, error)
	Rank(ctx context.Context, username string) (Entry, error)
}
