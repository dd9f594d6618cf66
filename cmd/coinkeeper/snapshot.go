package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akerkez/coinkeeper/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all collections as one JSON document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			blob, err := store.ExportSnapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			if output == "" || output == "-" {
				_, err = os.Stdout.Write(append(blob, '\n'))
				return err
			}
			if err := os.WriteFile(output, blob, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Println(cli.FormatSuccess("exported to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a snapshot, replacing each collection present in it",
		Long: `Import a previously exported JSON document. Collections present in the
document replace the stored ones wholesale; collections absent from the
document are left untouched. A malformed document changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := initStore()
			if err != nil {
				return err
			}
			defer store.Close()

			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			if err := store.ImportSnapshot(cmd.Context(), blob); err != nil {
				return fmt.Errorf("failed to import: %w", err)
			}
			fmt.Println(cli.FormatSuccess("imported " + args[0]))
			return nil
		},
	}
}
