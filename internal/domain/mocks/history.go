package mocks

import (
	"context"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// HistoryStore is a mock implementation of ports.HistoryStore.
// It keeps records most-recent-first. Limit bounds the log when positive.
type HistoryStore struct {
	Records []entities.ScanRecord
	Cleared int
	Limit   int
}

// Record prepends entry and returns the records pushed past Limit.
func (m *HistoryStore) Record(ctx context.Context, entry entities.ScanRecord) []entities.ScanRecord {
	m.Records = append([]entities.ScanRecord{entry}, m.Records...)
	if m.Limit <= 0 || len(m.Records) <= m.Limit {
		return nil
	}
	evicted := m.Records[m.Limit:]
	m.Records = m.Records[:m.Limit]
	return evicted
}

// List returns a copy of the stored records.
func (m *HistoryStore) List(ctx context.Context) []entities.ScanRecord {
	out := make([]entities.ScanRecord, len(m.Records))
	copy(out, m.Records)
	return out
}

// Clear drops all records.
func (m *HistoryStore) Clear(ctx context.Context) {
	m.Records = nil
	m.Cleared++
}
