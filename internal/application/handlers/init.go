package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/scamguard/internal/domain/ports"
	"github.com/ersonp/scamguard/internal/infrastructure/config"
	embedder "github.com/ersonp/scamguard/internal/infrastructure/embedder/openai"
)

// InitHandler handles first-time setup.
type InitHandler struct {
	collectionManager ports.CollectionManager
}

// NewInitHandler creates a new init handler. collectionManager may be nil when the index is disabled.
func NewInitHandler(collectionManager ports.CollectionManager) *InitHandler {
	return &InitHandler{
		collectionManager: collectionManager,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath     string
	HistoryPath    string
	CollectionName string
}

// Handle writes the default config under basePath and prepares the index collection.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("scamguard already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		HistoryPath: cfg.History.Path,
	}

	if h.collectionManager != nil {
		if err := h.collectionManager.EnsureCollection(ctx, embedder.VectorSize); err != nil {
			return nil, fmt.Errorf("creating collection: %w", err)
		}
		result.CollectionName = cfg.Index.Collection
	}

	return result, nil
}
