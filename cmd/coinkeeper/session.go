package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akerkez/coinkeeper/internal/cli"
	"github.com/akerkez/coinkeeper/internal/model"
)

func loginCmd() *cobra.Command {
	var (
		email string
		name  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a local profile (mock session, no real authentication)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.SaveSession(cmd.Context(), model.User{Email: email, Name: name})
			if err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}
			fmt.Println(cli.FormatSuccess("logged in as " + user.Email))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearSession(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println(cli.FormatSuccess("logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.CurrentSession(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load session: %w", err)
			}
			if user == nil {
				fmt.Println(cli.InfoStyle.Render("Not logged in."))
				return nil
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
}

func limitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit",
		Short: "Get or set the overall monthly spending limit",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the monthly limit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.GetSettings(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			limit := settings.MonthlyLimit
			if limit == 0 {
				limit = cfg.MonthlyLimit
			}
			fmt.Println(cli.FormatAmount(limit, cfg.CurrencySymbol))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetMonthlyLimit(cmd.Context(), limit); err != nil {
				return fmt.Errorf("failed to set limit: %w", err)
			}
			fmt.Println(cli.FormatSuccess("monthly limit updated"))
			return nil
		},
	})

	return cmd
}
