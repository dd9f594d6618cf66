package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/akerkez/coinkeeper/internal/cli"
	"github.com/akerkez/coinkeeper/internal/engine"
	"github.com/akerkez/coinkeeper/internal/model"
)

func summaryCmd() *cobra.Command {
	var (
		rangeMode string
		months    int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, category breakdown, monthly history, and a forecast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			transactions, err := store.ListTransactions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			now := time.Now()
			filter := model.NewFilter()
			filter.Range = model.DateRange(rangeMode)
			if !filter.Range.Valid() {
				return fmt.Errorf("invalid range %q", rangeMode)
			}
			view := engine.Filter(transactions, filter, now)

			symbol := cfg.CurrencySymbol
			totals := engine.ComputeTotals(view)
			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Summary"))
			fmt.Printf("Income:  %s\n", cli.SuccessStyle.Render(cli.FormatAmount(totals.Income, symbol)))
			fmt.Printf("Expense: %s\n", cli.ErrorStyle.Render(cli.FormatAmount(totals.Expense, symbol)))
			fmt.Printf("Balance: %s\n\n", cli.FormatAmount(totals.Balance, symbol))

			stats := engine.CategoryStats(view)
			sort.SliceStable(stats, func(i, j int) bool {
				return stats[i].Expense > stats[j].Expense
			})
			if len(stats) > 0 {
				fmt.Println(cli.TitleStyle.Render("By category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cli.HeaderStyle.Render("Category"),
					cli.HeaderStyle.Render("Income"),
					cli.HeaderStyle.Render("Expense"),
					cli.HeaderStyle.Render("Count"))
				for _, st := range stats {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
						st.Category,
						cli.FormatAmount(st.Income, symbol),
						cli.FormatAmount(st.Expense, symbol),
						st.Count)
				}
				w.Flush()
				fmt.Println()
			}

			// The monthly table always covers the whole ledger, not the
			// filtered view, so trends stay visible while filtering.
			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Last %d months", months)))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Income"),
				cli.HeaderStyle.Render("Expense"),
				cli.HeaderStyle.Render("Balance"))
			monthly := engine.MonthlySummary(transactions, months, now)
			for _, point := range monthly {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					point.Month,
					cli.FormatAmount(point.Income, symbol),
					cli.FormatAmount(point.Expense, symbol),
					cli.FormatAmount(point.Balance, symbol))
			}
			w.Flush()

			settings, err := store.GetSettings(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			limit := settings.MonthlyLimit
			if limit == 0 {
				limit = cfg.MonthlyLimit
			}
			if n := len(monthly); limit > 0 && n > 0 && monthly[n-1].Expense > limit {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("spending this month (%s) exceeds the monthly limit (%s)",
					cli.FormatAmount(monthly[n-1].Expense, symbol),
					cli.FormatAmount(limit, symbol))))
			}

			if len(monthly) >= 2 {
				last := monthly[len(monthly)-1]
				prev := monthly[len(monthly)-2]
				fmt.Printf("\nExpense change vs previous month: %s\n",
					cli.FormatPercent(engine.PercentChange(last.Expense, prev.Expense)))
			}

			if prediction := engine.PredictNextPeriod(transactions); prediction != nil {
				fmt.Println(cli.TitleStyle.Render("\nNext month forecast"))
				fmt.Printf("Income:  %s\n", cli.FormatAmount(prediction.PredictedIncome, symbol))
				fmt.Printf("Expense: %s\n", cli.FormatAmount(prediction.PredictedExpense, symbol))
				fmt.Printf("Balance: %s\n", cli.FormatAmount(prediction.PredictedBalance, symbol))
				fmt.Println(cli.SubtleStyle.Render(
					fmt.Sprintf("confidence %.1f (rough hint from trailing averages)", prediction.Confidence)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&rangeMode, "range", string(model.RangeAll), "date range for totals (today, week, month, year, all)")
	cmd.Flags().IntVar(&months, "months", 6, "trailing months in the monthly table")

	return cmd
}
