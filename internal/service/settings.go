package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"squeaky/internal/model"
	"squeaky/internal/storage"
)

// SettingsService reads and writes typed values out of the key-value
// settings collection. Values are stored JSON-encoded so booleans,
// strings and counters share one table and survive export untouched.
type SettingsService struct {
	store storage.Store
}

func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Theme(ctx context.Context) (model.Theme, error) {
	var raw string
	if err := getSetting(ctx, s.store, model.SettingTheme, &raw); err != nil {
		return model.ThemeLight, err
	}
	theme := model.Theme(raw)
	if !theme.IsValid() {
		return model.ThemeLight, nil
	}
	return theme, nil
}

func (s *SettingsService) SetTheme(ctx context.Context, theme model.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("service: unknown theme %q", theme)
	}
	return putSetting(ctx, s.store, model.SettingTheme, string(theme))
}

func (s *SettingsService) HapticFeedback(ctx context.Context) (bool, error) {
	enabled := true
	if err := getSetting(ctx, s.store, model.SettingHapticFeedback, &enabled); err != nil {
		return true, err
	}
	return enabled, nil
}

func (s *SettingsService) SetHapticFeedback(ctx context.Context, enabled bool) error {
	return putSetting(ctx, s.store, model.SettingHapticFeedback, enabled)
}

func (s *SettingsService) TotalCompleted(ctx context.Context) (int, error) {
	return totalCompleted(ctx, s.store)
}

func totalCompleted(ctx context.Context, store storage.Store) (int, error) {
	total := 0
	if err := getSetting(ctx, store, model.SettingTotalCompleted, &total); err != nil {
		return 0, err
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}

func putTotalCompleted(ctx context.Context, store storage.Store, total int) error {
	if total < 0 {
		total = 0
	}
	return putSetting(ctx, store, model.SettingTotalCompleted, total)
}

// getSetting leaves dest at its zero/preset value when the key is absent.
func getSetting(ctx context.Context, store storage.Store, key string, dest any) error {
	setting, err := store.GetSetting(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(setting.Value), dest); err != nil {
		return fmt.Errorf("service: decode setting %s: %w", key, err)
	}
	return nil
}

func putSetting(ctx context.Context, store storage.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("service: encode setting %s: %w", key, err)
	}
	return store.PutSetting(ctx, model.Setting{Key: key, Value: string(raw)})
}
