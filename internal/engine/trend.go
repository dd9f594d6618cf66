package engine

import (
	"github.com/akerkez/coinkeeper/internal/model"
)

// trailingPredictionMonths caps how many trailing monthly buckets feed the
// forecast.
const trailingPredictionMonths = 3

// PercentChange returns the percentage change from previous to current.
// A zero previous value yields 100 so new activity always registers as
// full growth instead of dividing by zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 100
	}
	return (current - previous) / previous * 100
}

// Prediction is a simple next-month forecast from trailing averages.
// Confidence is a fixed linear function of sample count; treat it as a UI
// hint, not a statistical measure.
type Prediction struct {
	PredictedIncome  float64
	PredictedExpense float64
	PredictedBalance float64
	Confidence       float64
}

// PredictNextPeriod averages the most recent monthly buckets (up to three)
// into a next-month forecast. Returns nil when fewer than two months of
// activity exist.
func PredictNextPeriod(transactions []model.Transaction) *Prediction {
	months := GroupByPeriod(transactions, PeriodMonth)
	if len(months) > trailingPredictionMonths {
		months = months[len(months)-trailingPredictionMonths:]
	}
	if len(months) < 2 {
		return nil
	}

	var income, expense float64
	for _, m := range months {
		income += m.Income
		expense += m.Expense
	}
	n := float64(len(months))
	avgIncome := income / n
	avgExpense := expense / n

	return &Prediction{
		PredictedIncome:  avgIncome,
		PredictedExpense: avgExpense,
		PredictedBalance: avgIncome - avgExpense,
		Confidence:       n * 0.3,
	}
}
