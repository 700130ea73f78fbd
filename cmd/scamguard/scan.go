package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type scanFlags struct {
	file        string
	batch       string
	batchFormat string
	asJSON      bool
}

func newScanCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "scan [text]",
		Short: "Scan a message for scam indicators",
		Long: `Scans a message and records the result in history.

The message is taken from the arguments, from --file, or from stdin when neither is given.
With --batch, every message in a JSON, CSV or text file is scanned in turn.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Read the message from a file")
	cmd.Flags().StringVarP(&flags.batch, "batch", "b", "", "Scan every message in a .json, .csv or .txt file")
	cmd.Flags().StringVar(&flags.batchFormat, "batch-format", "", "Batch file format (json, csv, text); detected from the extension if empty")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print the record as JSON")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags scanFlags) error {
	if flags.batch != "" {
		if len(args) > 0 || flags.file != "" {
			return fmt.Errorf("--batch cannot be combined with a message or --file")
		}
		return runBatchScan(cmd, flags)
	}

	text, err := readScanInput(cmd.InOrStdin(), args, flags.file)
	if err != nil {
		return err
	}

	return withDeps(cmd.Context(), func(deps *Deps) error {
		rec, err := deps.ScanHandler.Handle(cmd.Context(), text)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flags.asJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rec)
		}
		displayRecord(out, rec)
		return nil
	})
}

func readScanInput(stdin io.Reader, args []string, file string) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", fmt.Errorf("give the message as arguments or --file, not both")
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
}
