package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/ports"
)

// DefaultSimilarLimit is the default number of similar scans returned.
const DefaultSimilarLimit = 5

// SimilarService indexes scanned messages and finds past scans close to new text.
type SimilarService struct {
	embedder ports.Embedder
	index    ports.ScanIndex
}

// NewSimilarService creates a new similar-scan service.
func NewSimilarService(embedder ports.Embedder, index ports.ScanIndex) *SimilarService {
	return &SimilarService{
		embedder: embedder,
		index:    index,
	}
}

// Index embeds the scan's input text and stores it.
func (s *SimilarService) Index(ctx context.Context, scan entities.ScanRecord) error {
	embedding, err := s.embedder.Embed(ctx, scan.InputText)
	if err != nil {
		return fmt.Errorf("embedding scan text: %w", err)
	}

	if err := s.index.Save(ctx, scan, embedding); err != nil {
		return fmt.Errorf("indexing scan: %w", err)
	}
	return nil
}

// Search returns up to limit indexed scans most similar to text.
func (s *SimilarService) Search(ctx context.Context, text string, limit int) ([]entities.SimilarScan, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	embedding, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := s.index.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	return results, nil
}

// Remove drops the given scans from the index.
func (s *SimilarService) Remove(ctx context.Context, scans []entities.ScanRecord) error {
	if len(scans) == 0 {
		return nil
	}

	ids := make([]string, len(scans))
	for i, scan := range scans {
		ids[i] = scan.ID
	}
	if err := s.index.Delete(ctx, ids); err != nil {
		return fmt.Errorf("removing scans: %w", err)
	}
	return nil
}

// Clear removes every indexed scan.
func (s *SimilarService) Clear(ctx context.Context) error {
	if err := s.index.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	return nil
}
