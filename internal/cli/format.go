package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akerkez/coinkeeper/internal/engine"
)

// FormatAmount renders a monetary amount with thousands separators, two
// decimals, and a trailing currency symbol, e.g. "12,500.00 ₸".
func FormatAmount(amount float64, symbol string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s%s.%02d %s", sign, groupThousands(cents/100), cents%100, symbol)
}

// groupThousands adds comma separators to an integer.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// RenderBudgetState colors a budget state for terminal display.
func RenderBudgetState(state engine.BudgetState) string {
	switch state {
	case engine.BudgetOver:
		return ErrorStyle.Render(string(state))
	case engine.BudgetWarning:
		return WarningStyle.Render(string(state))
	default:
		return SuccessStyle.Render(string(state))
	}
}
