package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akerkez/coinkeeper/internal/model"
)

// CategoryInput carries the caller-supplied fields for a new category.
type CategoryInput struct {
	Name  string             `validate:"required,notblank"`
	Type  model.CategoryType `validate:"required,oneof=income expense"`
	Icon  string
	Color string `validate:"omitempty,hexcolor"`
}

// defaultCategories is the fixed set seeded on first access.
func (s *Store) defaultCategories() []model.Category {
	now := s.now().UTC()
	seed := []struct {
		name  string
		ctype model.CategoryType
		icon  string
		color string
	}{
		{"Salary", model.CategoryTypeIncome, "💰", "#2ECC71"},
		{"Scholarship", model.CategoryTypeIncome, "🎓", "#1ABC9C"},
		{"Gifts", model.CategoryTypeIncome, "🎁", "#9B59B6"},
		{"Other Income", model.CategoryTypeIncome, "➕", "#34495E"},
		{"Food", model.CategoryTypeExpense, "🍔", "#E74C3C"},
		{"Transport", model.CategoryTypeExpense, "🚌", "#3498DB"},
		{"Entertainment", model.CategoryTypeExpense, "🎬", "#F39C12"},
		{"Health", model.CategoryTypeExpense, "💊", "#E67E22"},
		{"Shopping", model.CategoryTypeExpense, "🛍️", "#9B59B6"},
		{"Utilities", model.CategoryTypeExpense, "💡", "#1ABC9C"},
		{"Other Expenses", model.CategoryTypeExpense, "➖", "#95A5A6"},
	}

	categories := make([]model.Category, 0, len(seed))
	for _, c := range seed {
		categories = append(categories, model.Category{
			ID:        s.newID(),
			Name:      c.name,
			Type:      c.ctype,
			Icon:      c.icon,
			Color:     c.color,
			CreatedAt: now,
		})
	}
	return categories
}

// ListCategories returns all categories, seeding the default set on the
// first empty read.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := loadCollection[model.Category](ctx, s, keyCategories)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	categories = s.defaultCategories()
	if err := saveCollection(ctx, s, keyCategories, categories); err != nil {
		return nil, err
	}
	slog.Info("seeded default categories", "count", len(categories))
	return categories, nil
}

// CreateCategory appends a new category. Names are unique within a type.
func (s *Store) CreateCategory(ctx context.Context, input CategoryInput) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range categories {
		if existing.Type == input.Type && strings.EqualFold(existing.Name, input.Name) {
			return nil, fmt.Errorf("%w: category %q already exists for type %s",
				ErrValidation, input.Name, input.Type)
		}
	}

	category := model.Category{
		ID:        s.newID(),
		Name:      input.Name,
		Type:      input.Type,
		Icon:      input.Icon,
		Color:     input.Color,
		CreatedAt: s.now().UTC(),
	}
	categories = append(categories, category)
	if err := saveCollection(ctx, s, keyCategories, categories); err != nil {
		return nil, err
	}

	slog.Info("created category", "name", category.Name, "type", category.Type)
	return &category, nil
}

// checkCategoryRef enforces referential integrity: the named category must
// exist with the expected type.
func (s *Store) checkCategoryRef(ctx context.Context, name string, ctype model.CategoryType) error {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.Name == name && c.Type == ctype {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown %s category %q", ErrValidation, ctype, name)
}
