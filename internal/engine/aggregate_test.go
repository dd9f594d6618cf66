package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akerkez/coinkeeper/internal/model"
)

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(sampleTransactions())

	assert.Equal(t, 125000.0, totals.Income)
	assert.Equal(t, 7500.0, totals.Expense)
	assert.Equal(t, totals.Income-totals.Expense, totals.Balance)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Zero(t, totals.Income)
	assert.Zero(t, totals.Expense)
	assert.Zero(t, totals.Balance)
}

func TestCategoryStats(t *testing.T) {
	stats := CategoryStats(sampleTransactions())
	require.Len(t, stats, 4)

	// Insertion order of first occurrence.
	assert.Equal(t, "Salary", stats[0].Category)
	assert.Equal(t, "Food", stats[1].Category)
	assert.Equal(t, "Transport", stats[2].Category)
	assert.Equal(t, "Gifts", stats[3].Category)

	food := stats[1]
	assert.Equal(t, 0.0, food.Income)
	assert.Equal(t, 6700.0, food.Expense)
	assert.Equal(t, 2, food.Count)
	assert.Equal(t, 6700.0, food.Total)

	salary := stats[0]
	assert.Equal(t, 120000.0, salary.Income)
	assert.Equal(t, 120000.0, salary.Total)
	assert.Equal(t, 1, salary.Count)
}

func TestMonthlySummary(t *testing.T) {
	points := MonthlySummary(sampleTransactions(), 6, fixedNow)
	require.Len(t, points, 6)

	// Oldest first, ending at the current month.
	assert.Equal(t, "2023-10", points[0].Month.String())
	assert.Equal(t, "2024-03", points[5].Month.String())

	// 2023-11 has the 5000 gift.
	assert.Equal(t, 5000.0, points[1].Income)
	assert.Equal(t, 5000.0, points[1].Balance)

	// 2023-12 and 2024-01 are zero-filled.
	assert.Zero(t, points[2].Income)
	assert.Zero(t, points[2].Expense)
	assert.Zero(t, points[3].Income)

	// 2024-02 has the 4200 groceries expense.
	assert.Equal(t, 4200.0, points[4].Expense)
	assert.Equal(t, -4200.0, points[4].Balance)

	// 2024-03 has salary plus two expenses.
	assert.Equal(t, 120000.0, points[5].Income)
	assert.Equal(t, 3300.0, points[5].Expense)
}

func TestMonthlySummaryEmptyInput(t *testing.T) {
	points := MonthlySummary(nil, 6, fixedNow)
	require.Len(t, points, 6)
	for i, point := range points {
		assert.Zero(t, point.Income, "month %d", i)
		assert.Zero(t, point.Expense, "month %d", i)
		assert.Zero(t, point.Balance, "month %d", i)
	}
	assert.Equal(t, "2023-10", points[0].Month.String())
	assert.Equal(t, "2024-03", points[5].Month.String())
}

func TestMonthlySummaryWindowCrossesYearBoundary(t *testing.T) {
	jan := model.NewDate(2024, 1, 20)
	points := MonthlySummary([]model.Transaction{
		{ID: "x", Type: model.TypeExpense, Category: "Food", Amount: 10, Date: jan},
	}, 4, jan.Time)

	require.Len(t, points, 4)
	assert.Equal(t, "2023-10", points[0].Month.String())
	assert.Equal(t, "2024-01", points[3].Month.String())
	assert.Equal(t, 10.0, points[3].Expense)
}

func TestGroupByPeriod(t *testing.T) {
	txns := sampleTransactions()

	t.Run("month", func(t *testing.T) {
		buckets := GroupByPeriod(txns, PeriodMonth)
		require.Len(t, buckets, 3)
		assert.Equal(t, "2023-11", buckets[0].Key)
		assert.Equal(t, "2024-02", buckets[1].Key)
		assert.Equal(t, "2024-03", buckets[2].Key)

		march := buckets[2]
		assert.Equal(t, 120000.0, march.Income)
		assert.Equal(t, 3300.0, march.Expense)
		assert.Equal(t, []string{"t1", "t2", "t3"}, ids(march.Transactions))
	})

	t.Run("day", func(t *testing.T) {
		buckets := GroupByPeriod(txns, PeriodDay)
		require.Len(t, buckets, 5)
		assert.Equal(t, "2023-11-02", buckets[0].Key)
		assert.Equal(t, "2024-03-15", buckets[4].Key)
	})

	t.Run("week keys sort chronologically", func(t *testing.T) {
		buckets := GroupByPeriod(txns, PeriodWeek)
		for i := 1; i < len(buckets); i++ {
			assert.Less(t, buckets[i-1].Key, buckets[i].Key)
		}
	})
}

func TestGroupByPeriodSharesTransactionReferences(t *testing.T) {
	txns := sampleTransactions()
	buckets := GroupByPeriod(txns, PeriodDay)

	total := 0
	for _, b := range buckets {
		total += len(b.Transactions)
	}
	assert.Equal(t, len(txns), total)
}
