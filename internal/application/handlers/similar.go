package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/services"
)

// ErrIndexDisabled is returned when a similar-scan lookup is made without an index.
var ErrIndexDisabled = errors.New("similar-scan index is disabled; set index.enabled in config")

// SimilarHandler finds past scans similar to a message.
type SimilarHandler struct {
	similar *services.SimilarService
}

// NewSimilarHandler creates a new SimilarHandler. similar may be nil.
func NewSimilarHandler(similar *services.SimilarService) *SimilarHandler {
	return &SimilarHandler{similar: similar}
}

// Handle returns up to limit past scans closest to text.
func (h *SimilarHandler) Handle(ctx context.Context, text string, limit int) ([]entities.SimilarScan, error) {
	if h.similar == nil {
		return nil, ErrIndexDisabled
	}
	if strings.TrimSpace(text) == "" {
		return nil, entities.ErrInvalidInput
	}
	if limit <= 0 {
		limit = services.DefaultSimilarLimit
	}
	return h.similar.Search(ctx, text, limit)
}
