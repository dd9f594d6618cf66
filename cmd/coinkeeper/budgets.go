package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/akerkez/coinkeeper/internal/cli"
	"github.com/akerkez/coinkeeper/internal/engine"
	"github.com/akerkez/coinkeeper/internal/model"
	"github.com/akerkez/coinkeeper/internal/storage"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
		Long:  `Set monthly spending ceilings per expense category and check how far into them you are.`,
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetStatusCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	var (
		category  string
		monthStr  string
		amount    float64
		notify    bool
		threshold float64
		color     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace the budget for a category and month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			month := model.MonthOf(time.Now())
			if monthStr != "" {
				month, err = model.ParseMonth(monthStr)
				if err != nil {
					return err
				}
			}

			budget, err := store.UpsertBudget(cmd.Context(), storage.BudgetInput{
				Category:              category,
				Month:                 month,
				Amount:                amount,
				Notifications:         notify,
				NotificationThreshold: threshold,
				Color:                 color,
			})
			if err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("budget for %s in %s set to %s",
				budget.Category, budget.Month, cli.FormatAmount(budget.Amount, cfg.CurrencySymbol))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "expense category name (required)")
	cmd.Flags().StringVarP(&monthStr, "month", "M", "", "month as YYYY-MM (default: current month)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "spending ceiling (required, > 0)")
	cmd.Flags().BoolVar(&notify, "notify", false, "enable threshold notifications")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "notification threshold percentage")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func budgetStatusCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show budgets joined with actual spend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.ListBudgets(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}
			if monthStr != "" {
				month, err := model.ParseMonth(monthStr)
				if err != nil {
					return err
				}
				filtered := budgets[:0]
				for _, b := range budgets {
					if b.Month == month {
						filtered = append(filtered, b)
					}
				}
				budgets = filtered
			}
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'coinkeeper budget set' to create one."))
				return nil
			}

			transactions, err := store.ListTransactions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			statuses := engine.EvaluateBudgets(budgets, transactions)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Budget"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Remaining"),
				cli.HeaderStyle.Render("Used"),
				cli.HeaderStyle.Render("Status"))
			for _, st := range statuses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					st.Budget.Category,
					st.Budget.Month,
					cli.FormatAmount(st.Budget.Amount, cfg.CurrencySymbol),
					cli.FormatAmount(st.Spent, cfg.CurrencySymbol),
					cli.FormatAmount(st.Remaining, cfg.CurrencySymbol),
					cli.FormatPercent(st.Percentage),
					cli.RenderBudgetState(st.Status))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthStr, "month", "M", "", "only budgets for this month (YYYY-MM)")

	return cmd
}
