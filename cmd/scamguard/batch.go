package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/infrastructure/parsers"
)

// batchSummary counts verdicts across a batch scan.
type batchSummary struct {
	counts  map[entities.Verdict]int
	skipped int
}

func runBatchScan(cmd *cobra.Command, flags scanFlags) error {
	messages, err := readBatch(flags.batch, flags.batchFormat)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return fmt.Errorf("no messages found in %s", flags.batch)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(deps *Deps) error {
		summary := batchSummary{counts: make(map[entities.Verdict]int)}
		records := make([]entities.ScanRecord, 0, len(messages))

		for _, msg := range messages {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			rec, err := deps.ScanHandler.Handle(ctx, msg.Text)
			if errors.Is(err, entities.ErrInvalidInput) {
				summary.skipped++
				deps.Logger.Warn("skipping blank message", "line", msg.LineNum)
				continue
			}
			if err != nil {
				return fmt.Errorf("line %d: %w", msg.LineNum, err)
			}

			summary.counts[rec.Verdict]++
			records = append(records, rec)
			if !flags.asJSON {
				displayRecordLine(out, rec)
			}
		}

		if flags.asJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(records)
		}

		displayBatchSummary(out, summary)
		return nil
	})
}

func readBatch(path, format string) ([]parsers.RawMessage, error) {
	parser := parsers.ForFile(path)
	if format != "" {
		parser = parsers.ForFormat(format)
	}
	if parser == nil {
		return nil, fmt.Errorf("cannot determine batch format for %s (use --batch-format json, csv or text)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	messages, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return messages, nil
}

func displayBatchSummary(w io.Writer, s batchSummary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Scanned %d messages: %d scam, %d possibly scam, %d safe",
		s.counts[entities.VerdictScam]+s.counts[entities.VerdictPossiblyScam]+s.counts[entities.VerdictSafe],
		s.counts[entities.VerdictScam],
		s.counts[entities.VerdictPossiblyScam],
		s.counts[entities.VerdictSafe],
	)
	if s.skipped > 0 {
		fmt.Fprintf(w, " (%d blank skipped)", s.skipped)
	}
	fmt.Fprintln(w)
}
