package storage

import (
	"context"
	"log/slog"

	"github.com/akerkez/coinkeeper/internal/model"
)

// BudgetInput carries the caller-supplied fields for an upserted budget.
type BudgetInput struct {
	Category              string      `validate:"required,notblank"`
	Month                 model.Month `validate:"required"`
	Amount                float64     `validate:"required,gt=0"`
	Notifications         bool
	NotificationThreshold float64 `validate:"omitempty,gt=0,lte=100"`
	Color                 string  `validate:"omitempty,hexcolor"`
}

// ListBudgets returns all persisted budgets.
func (s *Store) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	return loadCollection[model.Budget](ctx, s, keyBudgets)
}

// UpsertBudget creates or replaces the budget for (category, month). The
// category must be an existing expense category.
func (s *Store) UpsertBudget(ctx context.Context, input BudgetInput) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkCategoryRef(ctx, input.Category, model.CategoryTypeExpense); err != nil {
		return nil, err
	}

	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}

	budget := model.Budget{
		ID:                    s.newID(),
		Category:              input.Category,
		Month:                 input.Month,
		Amount:                input.Amount,
		Notifications:         input.Notifications,
		NotificationThreshold: input.NotificationThreshold,
		Color:                 input.Color,
		CreatedAt:             s.now().UTC(),
	}

	replaced := false
	for i := range budgets {
		if budgets[i].Category == input.Category && budgets[i].Month == input.Month {
			budget.ID = budgets[i].ID
			budget.CreatedAt = budgets[i].CreatedAt
			budgets[i] = budget
			replaced = true
			break
		}
	}
	if !replaced {
		budgets = append(budgets, budget)
	}

	if err := saveCollection(ctx, s, keyBudgets, budgets); err != nil {
		return nil, err
	}

	slog.Info("upserted budget",
		"category", budget.Category, "month", budget.Month.String(),
		"amount", budget.Amount, "replaced", replaced)
	return &budget, nil
}
