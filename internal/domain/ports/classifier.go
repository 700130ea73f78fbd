// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// Classifier sends text to a remote text-classification capability.
type Classifier interface {
	// Classify returns the unprocessed model output for text.
	// Failures wrap entities.ErrClassifierUnavailable.
	Classify(ctx context.Context, text string) (string, error)
}

// ReputationChecker classifies a single URL as threat or non-threat.
// Implementations never fail: internal errors degrade to a non-threat result.
type ReputationChecker interface {
	Check(ctx context.Context, url string) entities.URLThreat
}
