// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/ports"
	"github.com/ersonp/scamguard/internal/domain/services"
)

// ScanHandler scans submitted text and records the outcome.
type ScanHandler struct {
	scanner *services.ScanService
	history ports.HistoryStore
	similar *services.SimilarService
	logger  *slog.Logger
}

// NewScanHandler creates a new ScanHandler. similar may be nil when the index is disabled.
func NewScanHandler(scanner *services.ScanService, history ports.HistoryStore, similar *services.SimilarService, logger *slog.Logger) *ScanHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ScanHandler{
		scanner: scanner,
		history: history,
		similar: similar,
		logger:  logger,
	}
}

// Handle scans text, records the result in history and indexes it.
// Scans that history drops are removed from the index.
// Blank text is rejected with entities.ErrInvalidInput.
func (h *ScanHandler) Handle(ctx context.Context, text string) (entities.ScanRecord, error) {
	if strings.TrimSpace(text) == "" {
		return entities.ScanRecord{}, entities.ErrInvalidInput
	}

	rec := h.scanner.Scan(ctx, text)
	evicted := h.history.Record(ctx, rec)

	if h.similar != nil {
		if err := h.similar.Index(ctx, rec); err != nil {
			h.logger.WarnContext(ctx, "indexing scan failed", "id", rec.ID, "error", err)
		}
		// The index only holds scans still in history.
		if err := h.similar.Remove(ctx, evicted); err != nil {
			h.logger.WarnContext(ctx, "pruning index failed", "count", len(evicted), "error", err)
		}
	}

	return rec, nil
}
