package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/services"
)

// HistoryHandler handles history operations at the application layer.
type HistoryHandler struct {
	history *services.HistoryService
	similar *services.SimilarService
	logger  *slog.Logger
}

// NewHistoryHandler creates a new HistoryHandler. similar may be nil.
func NewHistoryHandler(history *services.HistoryService, similar *services.SimilarService, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HistoryHandler{
		history: history,
		similar: similar,
		logger:  logger,
	}
}

// HandleList returns the history most-recent-first.
func (h *HistoryHandler) HandleList(ctx context.Context) []entities.ScanRecord {
	return h.history.List(ctx)
}

// HandleShow returns a single record by id.
func (h *HistoryHandler) HandleShow(ctx context.Context, id string) (entities.ScanRecord, error) {
	return h.history.Find(ctx, id)
}

// HandleClear removes the history and, if enabled, the similar-scan index.
func (h *HistoryHandler) HandleClear(ctx context.Context) {
	h.history.Clear(ctx)

	if h.similar != nil {
		if err := h.similar.Clear(ctx); err != nil {
			h.logger.WarnContext(ctx, "clearing index failed", "error", err)
		}
	}
}

// HandleExport writes the history to w in the given format and returns the number of records.
func (h *HistoryHandler) HandleExport(ctx context.Context, w io.Writer, format string) (int, error) {
	if !slices.Contains(ExportFormats, format) {
		return 0, fmt.Errorf("invalid format %q, valid formats: %v", format, ExportFormats)
	}

	records := h.history.List(ctx)
	if len(records) == 0 {
		return 0, fmt.Errorf("no scans in history to export")
	}

	if err := formatRecords(w, format, records); err != nil {
		return 0, fmt.Errorf("formatting output: %w", err)
	}
	return len(records), nil
}
