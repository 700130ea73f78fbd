// Package services contains domain business logic.
package services

import (
	"time"

	"github.com/google/uuid"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// NewScanID returns a new opaque scan identifier.
func NewScanID() string {
	return uuid.New().String()
}

// newTimestamp returns the creation time for a record: UTC, millisecond precision.
func newTimestamp() time.Time {
	return timeNow().UTC().Truncate(time.Millisecond)
}
