package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

func (s *GormStore) CreateQuest(ctx context.Context, q *Quest) error {
	return wrapError(s.db.WithContext(ctx).Create(q).Error)
}

func (s *GormStore) GetQuest(ctx context.Context, id uint) (*Quest, error) {
	var q Quest
	if err := s.db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &q, nil
}

func (s *GormStore) ListQuests(ctx context.Context, f QuestFilter) ([]Quest, error) {
	query := s.db.WithContext(ctx).Order("id")
	if f.AssignedTo != "" {
		query = query.Where("assigned_to = ?", f.AssignedTo)
	}
	if f.DailyOnly {
		query = query.Where("is_daily = ?", true)
	}

	var out []Quest
	return out, wrapError(query.Find(&out).Error)
}

// CompleteQuest flips a quest to completed exactly once and credits its
// XPReward to username in the same transaction. A second call returns
// ErrConflict; an unknown user leaves the quest open.
func (s *GormStore) CompleteQuest(ctx context.Context, id uint, username string, now time.Time) (*Quest, *Level, error) {
	var (
		q     Quest
		level *Level
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Quest{}).
			Where("id = ? AND completed = ?", id, false).
			Update("completed", true)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.First(&q, id).Error; err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}

		var err error
		level, err = creditXP(tx, username, q.XPReward, now)
		return err
	})
	if errors.Is(err, ErrConflict) {
		return nil, nil, ErrConflict
	}
	if err != nil {
		return nil, nil, wrapError(err)
	}
	return &q, level, nil
}

func (s *GormStore) GetLevel(ctx context.Context, username string) (*Level, error) {
	var l Level
	if err := s.db.WithContext(ctx).Where(byUser(username)).First(&l).Error; err != nil {
		return nil, wrapError(err)
	}
	return &l, nil
}
