package entities

import "errors"

// Error kinds raised or absorbed along the scan pipeline.
var (
	// ErrClassifierUnavailable means the remote classification call could not be completed.
	ErrClassifierUnavailable = errors.New("classifier unavailable")

	// ErrMalformedResponse means classifier output could not be parsed. Absorbed by the normalizer.
	ErrMalformedResponse = errors.New("malformed classifier response")

	// ErrStorageUnavailable means persisted history could not be read or written.
	ErrStorageUnavailable = errors.New("history storage unavailable")

	// ErrInvalidInput means a blank submission.
	ErrInvalidInput = errors.New("input text is empty")

	// ErrNotFound means no history record has the requested id.
	ErrNotFound = errors.New("scan not found")
)
