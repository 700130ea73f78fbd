// Package parsers provides parsers for reading batches of messages to scan.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawMessage is a message read from a batch file before scanning.
type RawMessage struct {
	Text    string `json:"text"`
	Source  string `json:"source,omitempty"` // Free-form origin, e.g. "sms" or a sender
	LineNum int    `json:"-"`                // Line number in source file (set by parser)
}

// Parser defines the interface for parsing messages from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawMessage, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv", "text".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	case "text", "txt":
		return &TextParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	case ".txt":
		return &TextParser{}
	default:
		return nil
	}
}
