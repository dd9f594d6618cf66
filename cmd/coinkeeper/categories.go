package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/akerkez/coinkeeper/internal/cli"
	"github.com/akerkez/coinkeeper/internal/model"
	"github.com/akerkez/coinkeeper/internal/storage"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Icon"))
			for _, cat := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.Name, cat.Type, cat.Icon)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		name  string
		ctype string
		icon  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := store.CreateCategory(cmd.Context(), storage.CategoryInput{
				Name:  name,
				Type:  model.CategoryType(ctype),
				Icon:  icon,
				Color: color,
			})
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added %s category %q", category.Type, category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "category name (required)")
	cmd.Flags().StringVarP(&ctype, "type", "t", "expense", "category type (income, expense)")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
