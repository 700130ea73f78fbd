package ports

import (
	"context"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// HistoryStore is the bounded, most-recent-first log of past scans.
// None of its operations surface storage failures to the caller.
type HistoryStore interface {
	// Record prepends entry and truncates the log to the retention bound.
	// It returns the records dropped by the truncation once the log is saved.
	Record(ctx context.Context, entry entities.ScanRecord) (evicted []entities.ScanRecord)

	// List returns the log most-recent-first, or an empty slice if it is absent or unreadable.
	List(ctx context.Context) []entities.ScanRecord

	// Clear removes the entire log.
	Clear(ctx context.Context)
}

// SlotStore is durable storage of named text slots.
type SlotStore interface {
	// GetSlot returns the value stored under name. found is false if the slot is absent.
	GetSlot(ctx context.Context, name string) (value string, found bool, err error)

	// PutSlot stores value under name, replacing any previous value.
	PutSlot(ctx context.Context, name, value string) error

	// DeleteSlot removes the slot. Removing an absent slot is not an error.
	DeleteSlot(ctx context.Context, name string) error
}
