package service

import (
	"context"
	"errors"
	"time"

	"squeaky/internal/model"
	"squeaky/internal/storage"
)

type AchievementService struct {
	store storage.Store
	now   func() time.Time
}

func NewAchievementService(store storage.Store, now func() time.Time) *AchievementService {
	if now == nil {
		now = time.Now
	}
	return &AchievementService{store: store, now: now}
}

// CheckMilestone reports the milestone whose threshold exactly equals the
// lifetime total, if any.
func (s *AchievementService) CheckMilestone(total int) (model.Milestone, bool) {
	return model.MilestoneFor(total)
}

// Unlock persists the badge if it has not been unlocked before. Returns
// true only for the call that created the record, so redundant calls are
// harmless and first-unlock celebration fires once.
func (s *AchievementService) Unlock(ctx context.Context, badge string) (bool, error) {
	created := false
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		_, err := tx.GetAchievementByKey(ctx, badge)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		ach := model.Achievement{Key: badge, UnlockedAt: s.now()}
		if err := tx.CreateAchievement(ctx, &ach); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *AchievementService) List(ctx context.Context) ([]model.Achievement, error) {
	return s.store.ListAchievements(ctx)
}
