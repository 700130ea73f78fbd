package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// Defaults substituted for missing or invalid classifier fields.
const (
	DefaultConfidence   = 0.5
	MissingExplanation  = "No explanation provided by the AI model."
	UnparsedExplanation = "Unable to properly analyze the content due to a response parsing error. " +
		"As a precaution, consider this potentially suspicious."

	defaultVerdict = entities.VerdictPossiblyScam
)

// Keys of the object the classifier is asked to return.
const (
	keyVerdict     = "result"
	keyConfidence  = "confidence"
	keyExplanation = "explanation"
)

// Normalize coerces raw classifier output into a valid Analysis. It never fails.
func Normalize(raw string) entities.Analysis {
	analysis, _ := normalize(raw)
	return analysis
}

// normalize is Normalize that also reports why defaults were substituted wholesale.
// The returned Analysis is valid even when err is non-nil.
func normalize(raw string) (entities.Analysis, error) {
	obj, err := extractObject(raw)
	if err != nil {
		return entities.Analysis{
			Verdict:     defaultVerdict,
			Confidence:  DefaultConfidence,
			Explanation: UnparsedExplanation,
		}, err
	}

	return entities.Analysis{
		Verdict:     verdictField(obj),
		Confidence:  confidenceField(obj),
		Explanation: explanationField(obj),
	}, nil
}

// extractObject parses the text between the first '{' and the last '}'.
func extractObject(raw string) (map[string]any, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no object in response", entities.ErrMalformedResponse)
	}

	// Numbers stay as json.Number so an out-of-range value only affects its own field.
	dec := json.NewDecoder(strings.NewReader(raw[start : end+1]))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", entities.ErrMalformedResponse)
	}
	return obj, nil
}

func verdictField(obj map[string]any) entities.Verdict {
	s, ok := obj[keyVerdict].(string)
	if !ok {
		return defaultVerdict
	}
	if v, ok := entities.ParseVerdict(s); ok {
		return v
	}
	return defaultVerdict
}

func confidenceField(obj map[string]any) float64 {
	n, ok := obj[keyConfidence].(json.Number)
	if !ok {
		return DefaultConfidence
	}
	c, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || c < 0 || c > 1 {
		return DefaultConfidence
	}
	return c
}

func explanationField(obj map[string]any) string {
	s, ok := obj[keyExplanation].(string)
	if !ok || s == "" {
		return MissingExplanation
	}
	return s
}
