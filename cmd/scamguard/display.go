package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ersonp/scamguard/internal/application/handlers"
	"github.com/ersonp/scamguard/internal/domain/entities"
)

func displayRecord(w io.Writer, rec entities.ScanRecord) {
	fmt.Fprintf(w, "ID: %s\n", rec.ID)
	fmt.Fprintf(w, "  Result:     %s\n", rec.Verdict)
	fmt.Fprintf(w, "  Confidence: %s\n", percent(rec.Confidence))
	fmt.Fprintf(w, "  Scanned:    %s\n", rec.Timestamp.Local().Format(time.DateTime))
	if t := rec.URLThreat; t != nil {
		if t.IsThreat {
			fmt.Fprintf(w, "  URL threat: %s (%s)\n", orUnknown(string(t.ThreatType)), orUnknown(t.PlatformType))
		} else {
			fmt.Fprintln(w, "  URL threat: none")
		}
	}
	fmt.Fprintf(w, "  Explanation: %s\n", rec.Explanation)
	fmt.Fprintf(w, "  Text: %s\n", rec.InputText)
	fmt.Fprintln(w)
}

// displayRecordLine prints a one-line summary of a record.
func displayRecordLine(w io.Writer, rec entities.ScanRecord) {
	fmt.Fprintf(w, "%-13s %4s  %s  %s  %s\n",
		rec.Verdict,
		percent(rec.Confidence),
		rec.Timestamp.Local().Format(time.DateTime),
		rec.ID,
		handlers.Truncate(oneLine(rec.InputText), DefaultPreviewChars),
	)
}

func displayRecords(w io.Writer, records []entities.ScanRecord, limit int) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scans in history.")
		return
	}

	shown := records
	if limit > 0 && limit < len(records) {
		shown = records[:limit]
	}

	fmt.Fprintf(w, "Showing %d of %d scans:\n\n", len(shown), len(records))
	for _, rec := range shown {
		displayRecordLine(w, rec)
	}
}

func displaySimilar(w io.Writer, scans []entities.SimilarScan) {
	if len(scans) == 0 {
		fmt.Fprintln(w, "No similar scans found.")
		return
	}

	fmt.Fprintf(w, "Found %d similar scans:\n\n", len(scans))
	for i, s := range scans {
		fmt.Fprintf(w, "%d. [%.2f] %s %s\n", i+1, s.Score, orUnknown(string(s.Verdict)), percent(s.Confidence))
		fmt.Fprintf(w, "   %s\n", handlers.Truncate(oneLine(s.InputText), DefaultPreviewChars))
	}
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func oneLine(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == '\n' || r == '\r' || r == '\t' {
			out[i] = ' '
		}
	}
	return string(out)
}
