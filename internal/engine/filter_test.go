package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akerkez/coinkeeper/internal/model"
)

// fixedNow keeps every date predicate deterministic.
var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Type: model.TypeIncome, Category: "Salary", Amount: 120000, Date: model.NewDate(2024, 3, 1)},
		{ID: "t2", Type: model.TypeExpense, Category: "Food", Amount: 2500, Date: model.NewDate(2024, 3, 15), Description: "Lunch"},
		{ID: "t3", Type: model.TypeExpense, Category: "Transport", Amount: 800, Date: model.NewDate(2024, 3, 10)},
		{ID: "t4", Type: model.TypeExpense, Category: "Food", Amount: 4200, Date: model.NewDate(2024, 2, 20), Description: "Groceries"},
		{ID: "t5", Type: model.TypeIncome, Category: "Gifts", Amount: 5000, Date: model.NewDate(2023, 11, 2)},
	}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  model.Filter
		wantIDs []string
	}{
		{
			name:    "all filters wildcard keeps everything",
			filter:  model.NewFilter(),
			wantIDs: []string{"t1", "t2", "t3", "t4", "t5"},
		},
		{
			name:    "type filter",
			filter:  model.Filter{Type: "income", Category: model.FilterAll, Range: model.RangeAll},
			wantIDs: []string{"t1", "t5"},
		},
		{
			name:    "category filter",
			filter:  model.Filter{Type: model.FilterAll, Category: "Food", Range: model.RangeAll},
			wantIDs: []string{"t2", "t4"},
		},
		{
			name:    "type and category combine",
			filter:  model.Filter{Type: "expense", Category: "Food", Range: model.RangeAll},
			wantIDs: []string{"t2", "t4"},
		},
		{
			name:    "today",
			filter:  model.Filter{Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeToday},
			wantIDs: []string{"t2"},
		},
		{
			name:    "week is a seven day cutoff",
			filter:  model.Filter{Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeWeek},
			wantIDs: []string{"t2", "t3"},
		},
		{
			name:    "month is one calendar month back",
			filter:  model.Filter{Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeMonth},
			wantIDs: []string{"t1", "t2", "t3", "t4"},
		},
		{
			name:    "year is twelve calendar months back",
			filter:  model.Filter{Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeYear},
			wantIDs: []string{"t1", "t2", "t3", "t4", "t5"},
		},
		{
			name: "custom range is inclusive on both ends",
			filter: model.Filter{
				Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeCustom,
				StartDate: model.NewDate(2024, 2, 20), EndDate: model.NewDate(2024, 3, 10),
			},
			wantIDs: []string{"t1", "t3", "t4"},
		},
		{
			name: "custom range with missing bound filters nothing",
			filter: model.Filter{
				Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeCustom,
				StartDate: model.NewDate(2024, 2, 20),
			},
			wantIDs: []string{"t1", "t2", "t3", "t4", "t5"},
		},
		{
			name:    "search matches description case-insensitively",
			filter:  model.Filter{Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeAll, Search: "lunch"},
			wantIDs: []string{"t2"},
		},
		{
			name:    "search matches category",
			filter:  model.Filter{Type: model.FilterAll, Category: model.FilterAll, Range: model.RangeAll, Search: "trans"},
			wantIDs: []string{"t3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleTransactions(), tt.filter, fixedNow)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	input := sampleTransactions()
	_ = Filter(input, model.Filter{Type: "income", Category: model.FilterAll, Range: model.RangeAll}, fixedNow)
	assert.Equal(t, []string{"t1", "t2", "t3", "t4", "t5"}, ids(input))
}

func TestSort(t *testing.T) {
	txns := sampleTransactions()

	byAmount := Sort(txns, model.SortByAmount, model.SortAsc)
	assert.Equal(t, []string{"t3", "t2", "t4", "t5", "t1"}, ids(byAmount))

	byAmountDesc := Sort(txns, model.SortByAmount, model.SortDesc)
	assert.Equal(t, []string{"t1", "t5", "t4", "t2", "t3"}, ids(byAmountDesc))

	byDate := Sort(txns, model.SortByDate, model.SortAsc)
	assert.Equal(t, []string{"t5", "t4", "t1", "t3", "t2"}, ids(byDate))

	// Input order is untouched; Sort returns a copy.
	assert.Equal(t, []string{"t1", "t2", "t3", "t4", "t5"}, ids(txns))
}

func TestSortIsStable(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Category: "Food", Amount: 100, Date: model.NewDate(2024, 1, 1)},
		{ID: "b", Category: "Food", Amount: 100, Date: model.NewDate(2024, 1, 1)},
		{ID: "c", Category: "Food", Amount: 100, Date: model.NewDate(2024, 1, 1)},
	}

	for _, dir := range []model.SortDirection{model.SortAsc, model.SortDesc} {
		got := Sort(txns, model.SortByAmount, dir)
		require.Equal(t, []string{"a", "b", "c"}, ids(got), "ties must keep original order (%s)", dir)
	}
}

func TestSearch(t *testing.T) {
	got := Search(sampleTransactions(), "FOOD")
	assert.Equal(t, []string{"t2", "t4"}, ids(got))

	all := Search(sampleTransactions(), "")
	assert.Len(t, all, 5)
}
