package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/akerkez/coinkeeper/internal/cli"
	"github.com/akerkez/coinkeeper/internal/engine"
	"github.com/akerkez/coinkeeper/internal/model"
	"github.com/akerkez/coinkeeper/internal/storage"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, edit, and delete income and expense transactions.`,
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())

	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		txType      string
		category    string
		amount      float64
		dateStr     string
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			date := model.DateOf(time.Now())
			if dateStr != "" {
				date, err = model.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			txn, err := store.CreateTransaction(cmd.Context(), storage.TransactionInput{
				Type:        model.TransactionType(txType),
				Category:    category,
				Amount:      amount,
				Date:        date,
				Description: description,
				Tags:        tags,
			})
			if err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added %s %s (%s) on %s, id %s",
				txn.Type, cli.FormatAmount(txn.Amount, cfg.CurrencySymbol),
				txn.Category, txn.Date, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (required)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount (required, > 0)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "optional description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "optional tags (repeatable)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func txListCmd() *cobra.Command {
	var (
		typeFilter     string
		categoryFilter string
		rangeMode      string
		fromStr        string
		toStr          string
		search         string
		sortKey        string
		desc           bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions matching the current filters",
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

			filter := model.Filter{
				Type:     typeFilter,
				Category: categoryFilter,
				Range:    model.DateRange(rangeMode),
				Search:   search,
			}
			if !filter.Range.Valid() {
				return fmt.Errorf("invalid range %q", rangeMode)
			}
			if fromStr != "" {
				if filter.StartDate, err = model.ParseDate(fromStr); err != nil {
					return err
				}
			}
			if toStr != "" {
				if filter.EndDate, err = model.ParseDate(toStr); err != nil {
					return err
				}
			}

			view := engine.Filter(transactions, filter, time.Now())
			if sortKey != "" {
				dir := model.SortAsc
				if desc {
					dir = model.SortDesc
				}
				view = engine.Sort(view, model.SortKey(sortKey), dir)
			}

			if len(view) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("ID"))
			for _, txn := range view {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.Date, txn.Type, txn.Category,
					cli.FormatAmount(txn.Amount, cfg.CurrencySymbol),
					txn.Description, txn.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", model.FilterAll, "type filter (all, income, expense)")
	cmd.Flags().StringVar(&categoryFilter, "category", model.FilterAll, "category filter (all or a name)")
	cmd.Flags().StringVar(&rangeMode, "range", string(model.RangeAll), "date range (today, week, month, year, custom, all)")
	cmd.Flags().StringVar(&fromStr, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "custom range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&search, "search", "", "free-text search over category and description")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (date, amount, category)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}

func txEditCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		dateStr     string
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var patch storage.TransactionPatch
			if cmd.Flags().Changed("amount") {
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("date") {
				date, err := model.ParseDate(dateStr)
				if err != nil {
					return err
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("tag") {
				patch.Tags = &tags
			}

			txn, err := store.UpdateTransaction(cmd.Context(), args[0], patch)
			if err != nil {
				return fmt.Errorf("failed to edit transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("updated %s", txn.ID)))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "new amount")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "new description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "replacement tag set (repeatable)")

	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete transactions by identifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			for _, id := range args {
				if err := store.DeleteTransaction(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete %s: %w", id, err)
				}
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("deleted %s", strings.Join(args, ", "))))
			return nil
		},
	}
}
