package mocks

import (
	"context"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// ScanIndex is a mock implementation of ports.ScanIndex.
type ScanIndex struct {
	// Stored scans, in save order
	Saved []entities.ScanRecord

	// Search return values
	Results []entities.SimilarScan

	SaveErr      error
	SearchErr    error
	DeleteErr    error
	DeleteAllErr error

	Deleted        []string
	DeleteAllCalls int
}

// Save records the scan or returns the configured error.
func (m *ScanIndex) Save(ctx context.Context, scan entities.ScanRecord, embedding []float32) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, scan)
	return nil
}

// Search returns up to limit configured results.
func (m *ScanIndex) Search(ctx context.Context, embedding []float32, limit int) ([]entities.SimilarScan, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	if limit < len(m.Results) {
		return m.Results[:limit], nil
	}
	return m.Results, nil
}

// Delete drops the matching saved scans and records the IDs.
func (m *ScanIndex) Delete(ctx context.Context, ids []string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, ids...)

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.Saved[:0]
	for _, scan := range m.Saved {
		if !drop[scan.ID] {
			kept = append(kept, scan)
		}
	}
	m.Saved = kept
	return nil
}

// DeleteAll clears saved scans or returns the configured error.
func (m *ScanIndex) DeleteAll(ctx context.Context) error {
	m.DeleteAllCalls++
	if m.DeleteAllErr != nil {
		return m.DeleteAllErr
	}
	m.Saved = nil
	return nil
}

// CollectionManager is a mock implementation of ports.CollectionManager.
type CollectionManager struct {
	Err        error
	VectorSize uint64
	Calls      int
}

// EnsureCollection records the requested size or returns the configured error.
func (m *CollectionManager) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	m.Calls++
	m.VectorSize = vectorSize
	return m.Err
}
