package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser parses messages from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed messages.
// Expected columns: text, and optionally source.
func (p *CSVParser) Parse(r io.Reader) ([]RawMessage, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	if _, ok := colIndex["text"]; !ok {
		return nil, fmt.Errorf("missing required column: text")
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawMessages.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawMessage, error) {
	messages := []RawMessage{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		messages = append(messages, RawMessage{
			Text:    getColumn(record, colIndex, "text"),
			Source:  getColumn(record, colIndex, "source"),
			LineNum: line,
		})
	}

	return messages, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
