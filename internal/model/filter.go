package model

// FilterAll is the wildcard value for type and category filters.
const FilterAll = "all"

// DateRange selects the date predicate applied by the filter engine.
type DateRange string

const (
	// RangeToday keeps transactions dated today.
	RangeToday DateRange = "today"
	// RangeWeek keeps transactions from the last 7 days.
	RangeWeek DateRange = "week"
	// RangeMonth keeps transactions from the last calendar month.
	RangeMonth DateRange = "month"
	// RangeYear keeps transactions from the last 12 calendar months.
	RangeYear DateRange = "year"
	// RangeCustom keeps transactions between explicit start and end dates.
	RangeCustom DateRange = "custom"
	// RangeAll applies no date filtering.
	RangeAll DateRange = "all"
)

// Valid reports whether r is a known date range mode.
func (r DateRange) Valid() bool {
	switch r {
	case RangeToday, RangeWeek, RangeMonth, RangeYear, RangeCustom, RangeAll:
		return true
	}
	return false
}

// SortKey selects the comparator used to order a transaction view.
type SortKey string

const (
	// SortByDate orders by transaction date.
	SortByDate SortKey = "date"
	// SortByAmount orders by amount.
	SortByAmount SortKey = "amount"
	// SortByCategory orders by category name.
	SortByCategory SortKey = "category"
)

// SortDirection is the ordering direction for a sort step.
type SortDirection string

const (
	// SortAsc orders ascending.
	SortAsc SortDirection = "asc"
	// SortDesc orders descending.
	SortDesc SortDirection = "desc"
)

// Filter is the set of user-selected predicates narrowing the transaction
// view. It is ephemeral state, never persisted.
type Filter struct {
	Type      string    // "all" or a TransactionType value
	Category  string    // "all" or a category name
	Range     DateRange // zero value treated as RangeAll
	StartDate Date      // custom range lower bound, inclusive
	EndDate   Date      // custom range upper bound, inclusive
	Search    string    // free-text query over category and description
	SortBy    SortKey   // zero value means "keep stored order"
	SortDir   SortDirection
}

// NewFilter returns a filter that matches everything.
func NewFilter() Filter {
	return Filter{Type: FilterAll, Category: FilterAll, Range: RangeAll}
}
