package store

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettleBossBattle records a finished battle and credits its XPReward to the
// player atomically.
func (s *GormStore) SettleBossBattle(ctx context.Context, b *BossBattle, now time.Time) (*Level, error) {
	var level *Level
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		var err error
		level, err = creditXP(tx, b.User, b.XPReward, now)
		return err
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return level, nil
}

// ListBossBattles returns finished battles, most recent first.
func (s *GormStore) ListBossBattles(ctx context.Context, username string) ([]BossBattle, error) {
	var out []BossBattle
	err := s.db.WithContext(ctx).
		Where(byUser(username)).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Find(&out).Error
	return out, wrapError(err)
}
