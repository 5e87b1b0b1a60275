package storage

import (
	"context"
	"errors"

	"squeaky/internal/model"
)

var defaultCategories = []model.Category{
	{Name: "Kitchen", Color: "#f59e0b", Icon: "🍳", Order: 0},
	{Name: "Bathroom", Color: "#3b82f6", Icon: "🚿", Order: 1},
	{Name: "Bedroom", Color: "#8b5cf6", Icon: "🛏️", Order: 2},
	{Name: "Living Room", Color: "#10b981", Icon: "🛋️", Order: 3},
	{Name: "Outdoor", Color: "#22c55e", Icon: "🌿", Order: 4},
	{Name: "Laundry", Color: "#06b6d4", Icon: "👕", Order: 5},
	{Name: "Garage", Color: "#6b7280", Icon: "🔧", Order: 6},
	{Name: "General", Color: "#ec4899", Icon: "🏠", Order: 7},
}

var defaultSettings = []model.Setting{
	{Key: model.SettingHapticFeedback, Value: "true"},
	{Key: model.SettingTheme, Value: `"light"`},
	{Key: model.SettingTotalCompleted, Value: "0"},
}

// SeedDefaults installs the stock categories on an empty database and any
// missing settings. Safe to call on every start.
func SeedDefaults(ctx context.Context, store Store) error {
	count, err := store.CountCategories(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for i := range defaultCategories {
			cat := defaultCategories[i]
			if err := store.CreateCategory(ctx, &cat); err != nil {
				return err
			}
		}
	}
	for _, setting := range defaultSettings {
		_, err := store.GetSetting(ctx, setting.Key)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := store.PutSetting(ctx, setting); err != nil {
			return err
		}
	}
	return nil
}
