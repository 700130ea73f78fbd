package services

import (
	"fmt"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

const fallbackExplanation = "Unable to fully analyze due to a technical issue. " +
	"As a precaution, treat this as potentially suspicious. Error details: %s. " +
	"If this persists, please try again later or contact support."

// Fallback builds the degraded record used when analysis cannot complete.
func Fallback(text string, cause error) entities.ScanRecord {
	msg := "Unknown error"
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}

	return entities.ScanRecord{
		ID:          NewScanID(),
		Timestamp:   newTimestamp(),
		InputText:   text,
		Verdict:     entities.VerdictPossiblyScam,
		Confidence:  DefaultConfidence,
		Explanation: fmt.Sprintf(fallbackExplanation, msg),
	}
}
