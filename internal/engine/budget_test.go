package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akerkez/coinkeeper/internal/model"
)

func januaryLedger(foodAmount float64) []model.Transaction {
	return []model.Transaction{
		{ID: "i1", Type: model.TypeIncome, Category: "Salary", Amount: 1000, Date: model.NewDate(2024, 1, 5)},
		{ID: "e1", Type: model.TypeExpense, Category: "Food", Amount: foodAmount, Date: model.NewDate(2024, 1, 10)},
	}
}

func foodBudget(amount float64) model.Budget {
	return model.Budget{
		ID:       "b1",
		Category: "Food",
		Month:    model.Month{Year: 2024, Month: 1},
		Amount:   amount,
	}
}

func TestEvaluateBudgets(t *testing.T) {
	tests := []struct {
		name           string
		spend          float64
		budget         float64
		wantSpent      float64
		wantRemaining  float64
		wantPercentage float64
		wantStatus     BudgetState
	}{
		{
			name:  "under budget is good",
			spend: 300, budget: 500,
			wantSpent: 300, wantRemaining: 200, wantPercentage: 60, wantStatus: BudgetGood,
		},
		{
			name:  "past the ceiling is over",
			spend: 600, budget: 500,
			wantSpent: 600, wantRemaining: -100, wantPercentage: 120, wantStatus: BudgetOver,
		},
		{
			name:  "eighty percent is a warning",
			spend: 400, budget: 500,
			wantSpent: 400, wantRemaining: 100, wantPercentage: 80, wantStatus: BudgetWarning,
		},
		{
			name:  "exactly at the ceiling is over",
			spend: 500, budget: 500,
			wantSpent: 500, wantRemaining: 0, wantPercentage: 100, wantStatus: BudgetOver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statuses := EvaluateBudgets([]model.Budget{foodBudget(tt.budget)}, januaryLedger(tt.spend))
			require.Len(t, statuses, 1)

			st := statuses[0]
			assert.Equal(t, tt.wantSpent, st.Spent)
			assert.Equal(t, tt.wantRemaining, st.Remaining)
			assert.Equal(t, tt.wantPercentage, st.Percentage)
			assert.Equal(t, tt.wantStatus, st.Status)
		})
	}
}

func TestEvaluateBudgetsZeroAmountGuard(t *testing.T) {
	statuses := EvaluateBudgets([]model.Budget{foodBudget(0)}, januaryLedger(300))
	require.Len(t, statuses, 1)

	st := statuses[0]
	assert.Equal(t, 0.0, st.Percentage)
	assert.False(t, math.IsNaN(st.Percentage))
	assert.False(t, math.IsInf(st.Percentage, 0))
	assert.Equal(t, BudgetGood, st.Status)
}

func TestEvaluateBudgetsScopesToMonthAndCategory(t *testing.T) {
	budget := foodBudget(500)
	txns := []model.Transaction{
		// Counted: Food expense inside January.
		{ID: "e1", Type: model.TypeExpense, Category: "Food", Amount: 100, Date: model.NewDate(2024, 1, 1)},
		{ID: "e2", Type: model.TypeExpense, Category: "Food", Amount: 150, Date: model.NewDate(2024, 1, 31)},
		// Not counted: other month, other category, income.
		{ID: "e3", Type: model.TypeExpense, Category: "Food", Amount: 999, Date: model.NewDate(2024, 2, 1)},
		{ID: "e4", Type: model.TypeExpense, Category: "Transport", Amount: 999, Date: model.NewDate(2024, 1, 15)},
		{ID: "i1", Type: model.TypeIncome, Category: "Salary", Amount: 999, Date: model.NewDate(2024, 1, 15)},
	}

	statuses := EvaluateBudgets([]model.Budget{budget}, txns)
	require.Len(t, statuses, 1)
	assert.Equal(t, 250.0, statuses[0].Spent)
}

func TestEvaluateBudgetsKeepsInputOrder(t *testing.T) {
	budgets := []model.Budget{
		{ID: "b1", Category: "Transport", Month: model.Month{Year: 2024, Month: 1}, Amount: 100},
		{ID: "b2", Category: "Food", Month: model.Month{Year: 2024, Month: 1}, Amount: 100},
	}

	statuses := EvaluateBudgets(budgets, nil)
	require.Len(t, statuses, 2)
	assert.Equal(t, "Transport", statuses[0].Budget.Category)
	assert.Equal(t, "Food", statuses[1].Budget.Category)
	assert.Equal(t, 100.0, statuses[0].Remaining)
	assert.Equal(t, BudgetGood, statuses[0].Status)
}
