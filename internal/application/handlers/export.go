package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// Export formats.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// ExportFormats lists the supported export formats.
var ExportFormats = []string{FormatJSON, FormatCSV, FormatMarkdown}

const markdownTextLimit = 60

func formatRecords(w io.Writer, format string, records []entities.ScanRecord) error {
	switch format {
	case FormatJSON:
		return formatJSON(w, records)
	case FormatCSV:
		return formatCSV(w, records)
	case FormatMarkdown:
		return formatMarkdown(w, records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatJSON(w io.Writer, records []entities.ScanRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func formatCSV(w io.Writer, records []entities.ScanRecord) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "timestamp", "result", "confidence", "url_threat", "explanation", "input_text"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Timestamp.UTC().Format(time.RFC3339),
			string(r.Verdict),
			fmt.Sprintf("%.2f", r.Confidence),
			threatLabel(r.URLThreat),
			r.Explanation,
			r.InputText,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, records []entities.ScanRecord) error {
	if _, err := fmt.Fprintf(w, "# Scan History\n\nTotal: %d scans\n\n", len(records)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Time | Result | Confidence | URL threat | Text |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|------|--------|------------|------------|------|\n"); err != nil {
		return err
	}

	for _, r := range records {
		if _, err := fmt.Fprintf(w, "| %s | %s | %.0f%% | %s | %s |\n",
			r.Timestamp.UTC().Format(time.RFC3339),
			r.Verdict,
			r.Confidence*100,
			threatLabel(r.URLThreat),
			escapeMarkdown(Truncate(r.InputText, markdownTextLimit)),
		); err != nil {
			return err
		}
	}

	return nil
}

// threatLabel returns the threat type of a flagged URL, "none" for a clean one,
// and "" when no URL was checked.
func threatLabel(t *entities.URLThreat) string {
	switch {
	case t == nil:
		return ""
	case !t.IsThreat:
		return "none"
	case t.ThreatType == "":
		return "unknown"
	default:
		return string(t.ThreatType)
	}
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
