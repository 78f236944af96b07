package store

import (
	"context"
	"time"

	"gorm.io/gorm/clause"
)

func (s *GormStore) CreateFriend(ctx context.Context, f *Friend) error {
	if f.Since.IsZero() {
		f.Since = time.Now().UTC()
	}
	if f.Status == "" {
		f.Status = "accepted"
	}
	return wrapError(s.db.WithContext(ctx).Create(f).Error)
}

func (s *GormStore) ListFriends(ctx context.Context, username string) ([]Friend, error) {
	var out []Friend
	err := s.db.WithContext(ctx).Where(byUser(username)).Order("since, id").Find(&out).Error
	return out, wrapError(err)
}

var leaderboardOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "total_xp"}, Desc: true},
	{Column: clause.Column{Name: "user"}},
}}

// TopLeaderboard returns up to limit snapshots, highest XP first. Ties are
// broken by username so ranks are stable.
func (s *GormStore) TopLeaderboard(ctx context.Context, limit int) ([]Leaderboard, error) {
	var out []Leaderboard
	query := s.db.WithContext(ctx).Order(leaderboardOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return out, wrapError(query.Find(&out).Error)
}

// LeaderboardRank returns the 1-based position of username under the
// TopLeaderboard ordering.
func (s *GormStore) LeaderboardRank(ctx context.Context, username string) (int, *Leaderboard, error) {
	db := s.db.WithContext(ctx)

	var entry Leaderboard
	if err := db.Where(byUser(username)).First(&entry).Error; err != nil {
		return 0, nil, wrapError(err)
	}

	var ahead int64
	err := db.Model(&Leaderboard{}).
		Where(clause.Or(
			clause.Gt{Column: clause.Column{Name: "total_xp"}, Value: entry.TotalXP},
			clause.And(
				clause.Eq{Column: clause.Column{Name: "total_xp"}, Value: entry.TotalXP},
				clause.Lt{Column: clause.Column{Name: "user"}, Value: entry.User},
			),
		)).
		Count(&ahead).Error
	if err != nil {
		return 0, nil, wrapError(err)
	}
	return int(ahead) + 1, &entry, nil
}
