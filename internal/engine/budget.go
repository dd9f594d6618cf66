package engine

import (
	"github.com/akerkez/coinkeeper/internal/model"
)

// BudgetState classifies how far into a budget its month's spending is.
type BudgetState string

const (
	// BudgetGood means spending is comfortably under the ceiling.
	BudgetGood BudgetState = "good"
	// BudgetWarning means spending reached 80% of the ceiling.
	BudgetWarning BudgetState = "warning"
	// BudgetOver means spending reached or passed the ceiling.
	BudgetOver BudgetState = "over"
)

// BudgetStatus is a budget joined with its month's actual spend.
type BudgetStatus struct {
	Budget     model.Budget
	Spent      float64
	Remaining  float64 // may be negative when over budget
	Percentage float64
	Status     BudgetState
}

// EvaluateBudgets joins each budget against the expense transactions of
// its category and month. Output order follows input budget order.
func EvaluateBudgets(budgets []model.Budget, transactions []model.Transaction) []BudgetStatus {
	// Pre-index spend by (category, month) so the join is linear in the
	// transaction count instead of budgets × transactions.
	spent := make(map[string]float64)
	for _, txn := range transactions {
		if txn.Type != model.TypeExpense {
			continue
		}
		key := txn.Category + "|" + txn.Date.YearMonth().String()
		spent[key] += txn.Amount
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		status := BudgetStatus{
			Budget: budget,
			Spent:  spent[budget.Key()],
		}
		status.Remaining = budget.Amount - status.Spent

		// Guard the zero-amount case explicitly so percentage is always
		// finite instead of NaN or Inf.
		if budget.Amount > 0 {
			status.Percentage = status.Spent / budget.Amount * 100
		}

		switch {
		case status.Percentage >= 100:
			status.Status = BudgetOver
		case status.Percentage >= 80:
			status.Status = BudgetWarning
		default:
			status.Status = BudgetGood
		}
		statuses = append(statuses, status)
	}
	return statuses
}
