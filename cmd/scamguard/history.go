package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/scamguard/internal/application/handlers"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage past scans",
	}

	cmd.AddCommand(
		newHistoryListCmd(),
		newHistoryShowCmd(),
		newHistoryClearCmd(),
		newHistoryExportCmd(),
	)

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past scans, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				records := deps.HistoryHandler.HandleList(cmd.Context())
				if asJSON {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(records)
				}
				displayRecords(cmd.OutOrStdout(), records, limit)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of scans to display")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the history as JSON")

	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full details of a past scan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				rec, err := deps.HistoryHandler.HandleShow(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				displayRecord(cmd.OutOrStdout(), rec)
				return nil
			})
		},
	}
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all past scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				deps.HistoryHandler.HandleClear(cmd.Context())
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			})
		},
	}
}

type exportFlags struct {
	format string
	output string
}

func newHistoryExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export history to file",
		Long:  "Exports past scans to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", handlers.FormatJSON, "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	return withDeps(cmd.Context(), func(deps *Deps) (err error) {
		var w io.Writer = cmd.OutOrStdout()
		var f *os.File

		if flags.output != "" {
			f, err = os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing file: %w", cerr)
				}
			}()
			w = f
		}

		n, err := deps.HistoryHandler.HandleExport(cmd.Context(), w, flags.format)
		if err != nil {
			return err
		}

		if flags.output != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scans to %s\n", n, flags.output)
		}
		return nil
	})
}
