package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextParser reads one message per non-blank line.
type TextParser struct{}

// Parse reads lines from the reader and returns one message per non-blank line.
func (p *TextParser) Parse(r io.Reader) ([]RawMessage, error) {
	messages := []RawMessage{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		messages = append(messages, RawMessage{Text: line, LineNum: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}

	return messages, nil
}
