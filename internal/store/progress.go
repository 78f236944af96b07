package store

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *GormStore) CreateProgress(ctx context.Context, p *Progress) error {
	return wrapError(s.db.WithContext(ctx).Create(p).Error)
}

// LogProgress inserts a study session and credits its XPGained in one
// transaction. Nothing is written when the user does not exist.
func (s *GormStore) LogProgress(ctx context.Context, p *Progress, now time.Time) (*Level, error) {
	var level *Level
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		var err error
		level, err = creditXP(tx, p.User, p.XPGained, now)
		return err
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return level, nil
}

// ListProgress returns the user's study sessions, newest first.
func (s *GormStore) ListProgress(ctx context.Context, username string) ([]Progress, error) {
	var sessions []Progress
	err := s.db.WithContext(ctx).
		Where(byUser(username)).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "date"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: true},
		}}).
		Find(&sessions).Error
	return sessions, wrapError(err)
}
