package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akerkez/coinkeeper/internal/model"
)

func january() model.Month {
	return model.Month{Year: 2024, Month: 1}
}

func TestUpsertBudgetCreatesAndReplaces(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.UpsertBudget(ctx, BudgetInput{
		Category: "Food",
		Month:    january(),
		Amount:   500,
	})
	require.NoError(t, err)

	// Upserting the same (category, month) replaces, never duplicates.
	second, err := store.UpsertBudget(ctx, BudgetInput{
		Category:      "Food",
		Month:         january(),
		Amount:        750,
		Notifications: true,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "slot identity survives replacement")
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	budgets, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, 750.0, budgets[0].Amount)
	assert.True(t, budgets[0].Notifications)
}

func TestUpsertBudgetDistinctSlots(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.UpsertBudget(ctx, BudgetInput{Category: "Food", Month: january(), Amount: 500})
	require.NoError(t, err)
	_, err = store.UpsertBudget(ctx, BudgetInput{Category: "Transport", Month: january(), Amount: 200})
	require.NoError(t, err)
	_, err = store.UpsertBudget(ctx, BudgetInput{Category: "Food", Month: january().AddMonths(1), Amount: 600})
	require.NoError(t, err)

	budgets, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	assert.Len(t, budgets, 3)
}

func TestUpsertBudgetValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input BudgetInput
	}{
		{"zero amount", BudgetInput{Category: "Food", Month: january(), Amount: 0}},
		{"negative amount", BudgetInput{Category: "Food", Month: january(), Amount: -100}},
		{"missing category", BudgetInput{Month: january(), Amount: 100}},
		{"missing month", BudgetInput{Category: "Food", Amount: 100}},
		{"unknown category", BudgetInput{Category: "Yachts", Month: january(), Amount: 100}},
		{"income category rejected", BudgetInput{Category: "Salary", Month: january(), Amount: 100}},
		{"threshold above 100", BudgetInput{Category: "Food", Month: january(), Amount: 100, NotificationThreshold: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			_, err := store.UpsertBudget(ctx, tt.input)
			require.ErrorIs(t, err, ErrValidation)

			budgets, listErr := store.ListBudgets(ctx)
			require.NoError(t, listErr)
			assert.Empty(t, budgets)
		})
	}
}
