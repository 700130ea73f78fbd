package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/ports"
)

const (
	// HistorySlot is the slot name holding the serialized history log.
	HistorySlot = "scanHistory"
	// HistoryLimit is the maximum number of records retained.
	HistoryLimit = 50
)

// HistoryService keeps the bounded scan history in a single slot.
// Storage and decoding failures are logged and absorbed, never returned.
type HistoryService struct {
	store  ports.SlotStore
	logger *slog.Logger

	// mu serializes read-modify-write within this process.
	mu sync.Mutex
}

// NewHistoryService creates a new history service.
func NewHistoryService(store ports.SlotStore, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HistoryService{
		store:  store,
		logger: logger,
	}
}

// Record prepends entry and drops the oldest entries beyond HistoryLimit.
// An unreadable existing log is treated as empty. The dropped entries are
// returned only when the new log was saved.
func (s *HistoryService) Record(ctx context.Context, entry entities.ScanRecord) []entities.ScanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.load(ctx)

	log := make([]entities.ScanRecord, 0, len(existing)+1)
	log = append(log, entry)
	log = append(log, existing...)
	var evicted []entities.ScanRecord
	if len(log) > HistoryLimit {
		evicted = log[HistoryLimit:]
		log = log[:HistoryLimit]
	}

	data, err := json.Marshal(log)
	if err != nil {
		s.logger.Warn("encoding history failed, record dropped", "id", entry.ID, "error", err)
		return nil
	}

	if err := s.store.PutSlot(ctx, HistorySlot, string(data)); err != nil {
		s.logger.Warn("saving history failed", "id", entry.ID,
			"error", fmt.Errorf("%w: %w", entities.ErrStorageUnavailable, err))
		return nil
	}
	return evicted
}

// List returns the history most-recent-first. It is empty when nothing is stored
// or the stored log cannot be read.
func (s *HistoryService) List(ctx context.Context) []entities.ScanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Clear removes the whole history.
func (s *HistoryService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteSlot(ctx, HistorySlot); err != nil {
		s.logger.Warn("clearing history failed",
			"error", fmt.Errorf("%w: %w", entities.ErrStorageUnavailable, err))
	}
}

// Find returns the history record with the given id.
func (s *HistoryService) Find(ctx context.Context, id string) (entities.ScanRecord, error) {
	for _, rec := range s.List(ctx) {
		if rec.ID == id {
			return rec, nil
		}
	}
	return entities.ScanRecord{}, fmt.Errorf("%w: %s", entities.ErrNotFound, id)
}

// load reads and decodes the stored log. Caller must hold mu.
func (s *HistoryService) load(ctx context.Context) []entities.ScanRecord {
	value, found, err := s.store.GetSlot(ctx, HistorySlot)
	if err != nil {
		s.logger.Warn("reading history failed, treating as empty",
			"error", fmt.Errorf("%w: %w", entities.ErrStorageUnavailable, err))
		return []entities.ScanRecord{}
	}
	if !found {
		return []entities.ScanRecord{}
	}

	var log []entities.ScanRecord
	if err := json.Unmarshal([]byte(value), &log); err != nil {
		s.logger.Warn("history is corrupt, treating as empty", "error", err)
		return []entities.ScanRecord{}
	}
	if log == nil {
		return []entities.ScanRecord{}
	}
	return log
}
