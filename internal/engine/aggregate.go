package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/akerkez/coinkeeper/internal/model"
)

// Totals holds the overall income, expense, and balance for a view.
type Totals struct {
	Income  float64
	Expense float64
	Balance float64
}

// CategoryStat accumulates sums and counts for one category name.
type CategoryStat struct {
	Category string
	Income   float64
	Expense  float64
	Total    float64
	Count    int
}

// MonthlyPoint is one month of a trailing monthly summary.
type MonthlyPoint struct {
	Month   model.Month
	Income  float64
	Expense float64
	Balance float64
}

// Period selects the bucketing granularity for GroupByPeriod.
type Period string

const (
	// PeriodDay buckets by calendar day.
	PeriodDay Period = "day"
	// PeriodWeek buckets by ISO week.
	PeriodWeek Period = "week"
	// PeriodMonth buckets by calendar month.
	PeriodMonth Period = "month"
)

// PeriodBucket is one bucket of a period grouping. Transactions holds
// shared references into the input, not copies.
type PeriodBucket struct {
	Key          string
	Income       float64
	Expense      float64
	Transactions []model.Transaction
}

// ComputeTotals sums income and expense amounts; balance is their
// difference. Empty input yields all zeros.
func ComputeTotals(transactions []model.Transaction) Totals {
	var t Totals
	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			t.Income += txn.Amount
		case model.TypeExpense:
			t.Expense += txn.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// CategoryStats produces one entry per distinct category name present in
// the input, in insertion order of first occurrence. Callers re-sort for
// display (typically by expense descending).
func CategoryStats(transactions []model.Transaction) []CategoryStat {
	index := make(map[string]int)
	stats := make([]CategoryStat, 0)

	for _, txn := range transactions {
		i, ok := index[txn.Category]
		if !ok {
			i = len(stats)
			index[txn.Category] = i
			stats = append(stats, CategoryStat{Category: txn.Category})
		}
		switch txn.Type {
		case model.TypeIncome:
			stats[i].Income += txn.Amount
		case model.TypeExpense:
			stats[i].Expense += txn.Amount
		}
		stats[i].Count++
	}

	for i := range stats {
		stats[i].Total = stats[i].Income + stats[i].Expense
	}
	return stats
}

// MonthlySummary buckets transactions by year-month over the trailing
// windowMonths months ending at now's month, oldest first. Months with no
// activity are zero-filled, so the result always has windowMonths entries.
func MonthlySummary(transactions []model.Transaction, windowMonths int, now time.Time) []MonthlyPoint {
	if windowMonths <= 0 {
		return nil
	}

	current := model.MonthOf(now)
	points := make([]MonthlyPoint, windowMonths)
	index := make(map[model.Month]int, windowMonths)
	for i := 0; i < windowMonths; i++ {
		m := current.AddMonths(i - windowMonths + 1)
		points[i] = MonthlyPoint{Month: m}
		index[m] = i
	}

	for _, txn := range transactions {
		i, ok := index[txn.Date.YearMonth()]
		if !ok {
			continue // outside the trailing window
		}
		switch txn.Type {
		case model.TypeIncome:
			points[i].Income += txn.Amount
		case model.TypeExpense:
			points[i].Expense += txn.Amount
		}
	}

	for i := range points {
		points[i].Balance = points[i].Income - points[i].Expense
	}
	return points
}

// GroupByPeriod buckets transactions by the chosen granularity, sorted
// ascending by period key. Each bucket retains its constituent
// transactions.
func GroupByPeriod(transactions []model.Transaction, period Period) []PeriodBucket {
	index := make(map[string]int)
	buckets := make([]PeriodBucket, 0)

	for _, txn := range transactions {
		key := periodKey(txn.Date, period)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, PeriodBucket{Key: key})
		}
		switch txn.Type {
		case model.TypeIncome:
			buckets[i].Income += txn.Amount
		case model.TypeExpense:
			buckets[i].Expense += txn.Amount
		}
		buckets[i].Transactions = append(buckets[i].Transactions, txn)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// periodKey formats the bucket key for a date at the given granularity.
// Keys are zero-padded so lexicographic order matches chronological order.
func periodKey(d model.Date, period Period) string {
	switch period {
	case PeriodWeek:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodMonth:
		return d.YearMonth().String()
	default: // PeriodDay
		return d.String()
	}
}
