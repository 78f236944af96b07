package store

import (
	"context"

	"gorm.io/gorm/clause"
)

func (s *GormStore) GetAvatar(ctx context.Context, username string) (*Avatar, error) {
	var a Avatar
	if err := s.db.WithContext(ctx).Where(byUser(username)).First(&a).Error; err != nil {
		return nil, wrapError(err)
	}
	return &a, nil
}

// UpsertAvatar creates the user's avatar or replaces every field of the
// existing one, then reloads a from the database.
func (s *GormStore) UpsertAvatar(ctx context.Context, a *Avatar) error {
	if a.Theme == "" {
		a.Theme = "default"
	}
	db := s.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user"}},
		DoUpdates: clause.AssignmentColumns([]string{"avatar_name", "hairstyle", "outfit", "accessory", "theme"}),
	}).Create(a).Error
	if err != nil {
		return wrapError(err)
	}
	username := a.User
	*a = Avatar{}
	return wrapError(db.Where(byUser(username)).First(a).Error)
}

func (s *GormStore) CreateBadge(ctx context.Context, b *Badge) error {
	return wrapError(s.db.WithContext(ctx).Create(b).Error)
}

// ListBadges orders badges by the XP needed to unlock them.
func (s *GormStore) ListBadges(ctx context.Context) ([]Badge, error) {
	var out []Badge
	err := s.db.WithContext(ctx).Order("xp_required, id").Find(&out).Error
	return out, wrapError(err)
}
