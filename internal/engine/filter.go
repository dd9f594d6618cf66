// Package engine holds the derived-statistics and filtering computations:
// pure functions that turn raw transaction, budget, and category snapshots
// into the aggregates a view renders. Nothing here mutates its inputs, and
// anything time-dependent takes the current time as a parameter.
package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/akerkez/coinkeeper/internal/model"
)

// Filter applies the criteria's type, category, date-range, and free-text
// predicates, in that order, returning a new slice. The input keeps its
// relative order; sorting is a separate step (see Sort).
func Filter(transactions []model.Transaction, f model.Filter, now time.Time) []model.Transaction {
	result := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if f.Type != "" && f.Type != model.FilterAll && string(txn.Type) != f.Type {
			continue
		}
		if f.Category != "" && f.Category != model.FilterAll && txn.Category != f.Category {
			continue
		}
		if !matchesDateRange(txn.Date, f, now) {
			continue
		}
		if !matchesSearch(txn, f.Search) {
			continue
		}
		result = append(result, txn)
	}
	return result
}

// matchesDateRange evaluates the date predicate selected by the range mode.
func matchesDateRange(d model.Date, f model.Filter, now time.Time) bool {
	switch f.Range {
	case model.RangeToday:
		return d.Equal(model.DateOf(now).Time)
	case model.RangeWeek:
		return !d.Before(model.DateOf(now.AddDate(0, 0, -7)).Time)
	case model.RangeMonth:
		return !d.Before(model.DateOf(now.AddDate(0, -1, 0)).Time)
	case model.RangeYear:
		return !d.Before(model.DateOf(now.AddDate(0, -12, 0)).Time)
	case model.RangeCustom:
		// Either bound missing means no date filtering at all.
		if f.StartDate.IsZero() || f.EndDate.IsZero() {
			return true
		}
		return !d.Before(f.StartDate.Time) && !d.After(f.EndDate.Time)
	default: // model.RangeAll and the zero value
		return true
	}
}

// matchesSearch reports whether the transaction's category or description
// contains the query, case-insensitively. An empty query matches everything.
func matchesSearch(txn model.Transaction, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(txn.Category), q) ||
		strings.Contains(strings.ToLower(txn.Description), q)
}

// Search retains only transactions whose category or description contains
// the case-insensitive query substring.
func Search(transactions []model.Transaction, query string) []model.Transaction {
	if query == "" {
		return append([]model.Transaction(nil), transactions...)
	}
	result := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if matchesSearch(txn, query) {
			result = append(result, txn)
		}
	}
	return result
}

// Sort returns a new slice ordered by the given key and direction. The
// sort is stable: ties keep their original relative order.
func Sort(transactions []model.Transaction, key model.SortKey, dir model.SortDirection) []model.Transaction {
	sorted := append([]model.Transaction(nil), transactions...)

	var less func(a, b model.Transaction) bool
	switch key {
	case model.SortByAmount:
		less = func(a, b model.Transaction) bool { return a.Amount < b.Amount }
	case model.SortByCategory:
		less = func(a, b model.Transaction) bool { return a.Category < b.Category }
	case model.SortByDate:
		less = func(a, b model.Transaction) bool { return a.Date.Before(b.Date.Time) }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == model.SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
