package store

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studyquest/backend/internal/domain/progression"
)

// CreditXP adds amount to the user's total and refreshes the derived level
// and leaderboard rows in the same transaction.
func (s *GormStore) CreditXP(ctx context.Context, username string, amount int, now time.Time) (*Level, error) {
	var level *Level
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		level, err = creditXP(tx, username, amount, now)
		return err
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return level, nil
}

// creditXP runs inside tx so callers can commit a record and its XP
// together. The streak stored on the leaderboard is recomputed from the
// user's study sessions.
func creditXP(tx *gorm.DB, username string, amount int, now time.Time) (*Level, error) {
	res := tx.Model(&User{}).
		Where("username = ?", username).
		UpdateColumn("total_xp", gorm.Expr("total_xp + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var user User
	if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	var dates []time.Time
	if err := tx.Model(&Progress{}).Where(byUser(username)).Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	current, toNext := progression.LevelFor(user.TotalXP)
	level := Level{
		User:         username,
		CurrentLevel: current,
		TotalXP:      user.TotalXP,
		XPToNext:     toNext,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_level", "total_xp", "xp_to_next"}),
	}).Create(&level).Error; err != nil {
		return nil, err
	}
	level = Level{}
	if err := tx.Where(byUser(username)).First(&level).Error; err != nil {
		return nil, err
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_xp", "current_streak", "last_updated"}),
	}).Create(&Leaderboard{
		User:          username,
		TotalXP:       user.TotalXP,
		CurrentStreak: progression.Streak(dates),
		LastUpdated:   now.UTC(),
	}).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}
