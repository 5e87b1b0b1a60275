package service

import (
	"context"
	"testing"

	"squeaky/internal/model"
)

func TestSettingsDefaults(t *testing.T) {
	store := setupStore(t)
	svc := NewSettingsService(store)
	ctx := context.Background()

	theme, err := svc.Theme(ctx)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != model.ThemeLight {
		t.Fatalf("expected light default, got %s", theme)
	}

	haptics, err := svc.HapticFeedback(ctx)
	if err != nil {
		t.Fatalf("haptics: %v", err)
	}
	if !haptics {
		t.Fatalf("haptics default on")
	}

	total, err := svc.TotalCompleted(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected zero total, got %d", total)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupStore(t)
	svc := NewSettingsService(store)
	ctx := context.Background()

	if err := svc.SetTheme(ctx, model.ThemeLemon); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	theme, err := svc.Theme(ctx)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != model.ThemeLemon {
		t.Fatalf("expected lemon, got %s", theme)
	}

	if err := svc.SetTheme(ctx, model.Theme("neon")); err == nil {
		t.Fatalf("unknown theme must be rejected")
	}

	if err := svc.SetHapticFeedback(ctx, false); err != nil {
		t.Fatalf("set haptics: %v", err)
	}
	haptics, err := svc.HapticFeedback(ctx)
	if err != nil {
		t.Fatalf("haptics: %v", err)
	}
	if haptics {
		t.Fatalf("expected haptics off")
	}
}

func TestCategoryAddAppendsOrder(t *testing.T) {
	store := setupStore(t)
	svc := NewCategoryService(store)
	ctx := context.Background()

	first, err := svc.Add(ctx, "Garage", "#888888", "🔧")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := svc.Add(ctx, "Garden", "#00aa00", "🌱")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.Order != first.Order+1 {
		t.Fatalf("expected appended order, got %d then %d", first.Order, second.Order)
	}

	if _, err := svc.Add(ctx, "   ", "#fff", "x"); err == nil {
		t.Fatalf("blank name must be rejected")
	}
}
