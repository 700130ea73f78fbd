package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ersonp/scamguard/internal/application/handlers"
	"github.com/ersonp/scamguard/internal/domain/services"
	"github.com/ersonp/scamguard/internal/infrastructure/config"
	embedder "github.com/ersonp/scamguard/internal/infrastructure/embedder/openai"
	llm "github.com/ersonp/scamguard/internal/infrastructure/llm/openai"
	"github.com/ersonp/scamguard/internal/infrastructure/logging"
	"github.com/ersonp/scamguard/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/scamguard/internal/infrastructure/reputation"
	"github.com/ersonp/scamguard/internal/infrastructure/vectordb/qdrant"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	Logger         *slog.Logger
	ScanHandler    *handlers.ScanHandler
	HistoryHandler *handlers.HistoryHandler
	SimilarHandler *handlers.SimilarHandler
}

// basePath returns the directory holding .scamguard.
func basePath() (string, error) {
	if globalHome != "" {
		return globalHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return home, nil
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log, os.Stderr)

	historyDB, err := sqlite.NewRepository(cfg.History)
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer historyDB.Close()

	if err := historyDB.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	var similar *services.SimilarService
	if cfg.Index.Enabled {
		index, err := qdrant.NewRepository(cfg.Index)
		if err != nil {
			return fmt.Errorf("creating qdrant repository: %w", err)
		}
		defer index.Close()

		emb, err := embedder.NewEmbedder(cfg.Embedder)
		if err != nil {
			logger.Warn("similar-scan index disabled", "error", err)
		} else {
			similar = services.NewSimilarService(emb, index)
		}
	}

	scanner := services.NewScanService(
		llm.NewClient(cfg.Classifier),
		reputation.NewHeuristic(logger),
		logger,
	)
	history := services.NewHistoryService(historyDB, logger)

	return fn(&Deps{
		Config:         cfg,
		Logger:         logger,
		ScanHandler:    handlers.NewScanHandler(scanner, history, similar, logger),
		HistoryHandler: handlers.NewHistoryHandler(history, similar, logger),
		SimilarHandler: handlers.NewSimilarHandler(similar),
	})
}
