package service

import (
	"context"
	"errors"
	"strings"

	"squeaky/internal/model"
	"squeaky/internal/storage"
)

var ErrEmptyCategoryName = errors.New("service: category name is required")

type CategoryService struct {
	store storage.Store
}

func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

// Add appends a category at the end of the display order.
func (s *CategoryService) Add(ctx context.Context, name, color, icon string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, ErrEmptyCategoryName
	}
	var cat model.Category
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		count, err := tx.CountCategories(ctx)
		if err != nil {
			return err
		}
		cat = model.Category{Name: name, Color: color, Icon: icon, Order: count}
		return tx.CreateCategory(ctx, &cat)
	})
	if err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, in model.Category) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyCategoryName
	}
	return s.store.UpdateCategory(ctx, in)
}

// Delete removes the category only. Tasks keep their category name as
// plain text; a missing category just renders without color or icon.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	err := s.store.DeleteCategory(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}
