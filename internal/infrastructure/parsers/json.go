package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses messages from a JSON array of objects.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed messages.
func (p *JSONParser) Parse(r io.Reader) ([]RawMessage, error) {
	var messages []RawMessage

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&messages); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range messages {
		messages[i].LineNum = i + 1
	}

	return messages, nil
}
