package store

import "context"

func (s *GormStore) CreateReflection(ctx context.Context, r *TextAIReflection) error {
	return wrapError(s.db.WithContext(ctx).Create(r).Error)
}

func (s *GormStore) ListReflections(ctx context.Context, username string) ([]TextAIReflection, error) {
	var out []TextAIReflection
	err := s.db.WithContext(ctx).Where(byUser(username)).Order("id").Find(&out).Error
	return out, wrapError(err)
}

func (s *GormStore) GetReflection(ctx context.Context, id uint) (*TextAIReflection, error) {
	var r TextAIReflection
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &r, nil
}

func (s *GormStore) DeleteReflection(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&TextAIReflection{}, id)
	if res.Error != nil {
		return wrapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
