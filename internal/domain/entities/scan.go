// Package entities contains core domain data structures.
package entities

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Verdict is the three-way outcome assigned to one scan.
type Verdict string

// Verdict values. The string form is what gets persisted and what the classifier is asked for.
const (
	VerdictScam         Verdict = "SCAM"
	VerdictPossiblyScam Verdict = "POSSIBLY SCAM"
	VerdictSafe         Verdict = "SAFE"
)

// Verdicts lists every valid verdict.
var Verdicts = []Verdict{VerdictScam, VerdictPossiblyScam, VerdictSafe}

// ParseVerdict maps a raw label to a Verdict. The underscore spelling is accepted as well.
func ParseVerdict(s string) (Verdict, bool) {
	switch s {
	case string(VerdictScam):
		return VerdictScam, true
	case string(VerdictPossiblyScam), "POSSIBLY_SCAM":
		return VerdictPossiblyScam, true
	case string(VerdictSafe):
		return VerdictSafe, true
	}
	return "", false
}

// String returns the wire form of the verdict.
func (v Verdict) String() string {
	return string(v)
}

// MarshalJSON rejects values outside the enumeration.
func (v Verdict) MarshalJSON() ([]byte, error) {
	if _, ok := ParseVerdict(string(v)); !ok {
		return nil, fmt.Errorf("invalid verdict %q", string(v))
	}
	return json.Marshal(string(v))
}

// UnmarshalJSON accepts only the enumerated verdicts.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding verdict: %w", err)
	}
	parsed, ok := ParseVerdict(strings.TrimSpace(s))
	if !ok {
		return fmt.Errorf("invalid verdict %q", s)
	}
	*v = parsed
	return nil
}

// ThreatType is the category reported by a reputation check.
type ThreatType string

// Threat categories.
const (
	ThreatPhishing ThreatType = "PHISHING"
	ThreatMalware  ThreatType = "MALWARE"
)

// PlatformAny is the platform reported when a threat is not platform specific.
const PlatformAny = "ANY_PLATFORM"

// URLThreat is the outcome of checking one URL.
type URLThreat struct {
	IsThreat     bool       `json:"isUrlThreat"`
	ThreatType   ThreatType `json:"threatType,omitempty"`
	PlatformType string     `json:"platformType,omitempty"`
}

// Analysis is the validated verdict triple produced from classifier output.
type Analysis struct {
	Verdict     Verdict
	Confidence  float64
	Explanation string
}

// ScanRecord is the immutable result of one scan.
type ScanRecord struct {
	ID          string     `json:"id"`
	Timestamp   time.Time  `json:"timestamp"`
	InputText   string     `json:"inputText"`
	Verdict     Verdict    `json:"result"`
	Confidence  float64    `json:"confidence"`
	Explanation string     `json:"explanation"`
	URLThreat   *URLThreat `json:"safeBrowsingResult,omitempty"`
}

// SimilarScan is a previously indexed scan close to a query text.
type SimilarScan struct {
	ID         string
	InputText  string
	Verdict    Verdict
	Confidence float64
	Timestamp  time.Time
	Score      float32
}
