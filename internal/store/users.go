package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/studyquest/backend/internal/domain/progression"
)

// CreateUser inserts u together with its level and leaderboard rows.
func (s *GormStore) CreateUser(ctx context.Context, u *User) error {
	if u.JoinDate.IsZero() {
		u.JoinDate = time.Now().UTC()
	}

	return wrapError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		current, toNext := progression.LevelFor(u.TotalXP)
		if err := tx.Create(&Level{
			User:         u.Username,
			CurrentLevel: current,
			TotalXP:      u.TotalXP,
			XPToNext:     toNext,
		}).Error; err != nil {
			return err
		}

		return tx.Create(&Leaderboard{
			User:        u.Username,
			TotalXP:     u.TotalXP,
			LastUpdated: u.JoinDate,
		}).Error
	}))
}

func (s *GormStore) GetUser(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return &u, nil
}
