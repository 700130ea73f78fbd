package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/mocks"
	"github.com/ersonp/scamguard/internal/domain/services"
	"github.com/ersonp/scamguard/internal/infrastructure/reputation"
)

const safeOutput = `{"result": "SAFE", "confidence": 0.9, "explanation": "Looks fine."}`

func TestScanHandler_Handle(t *testing.T) {
	classifier := &mocks.Classifier{Output: safeOutput}
	scanner := services.NewScanService(classifier, reputation.NewHeuristic(nil), nil)
	history := &mocks.HistoryStore{}
	handler := NewScanHandler(scanner, history, nil, nil)

	rec, err := handler.Handle(context.Background(), "  hello friend  ")
	require.NoError(t, err)

	assert.Equal(t, entities.VerdictSafe, rec.Verdict)
	assert.Equal(t, "  hello friend  ", rec.InputText)
	assert.Equal(t, []string{"  hello friend  "}, classifier.Inputs)
	require.Len(t, history.Records, 1)
	assert.Equal(t, rec.ID, history.Records[0].ID)
}

func TestScanHandler_Handle_Blank(t *testing.T) {
	tests := []string{"", "   ", "\n\t"}

	for _, text := range tests {
		classifier := &mocks.Classifier{Output: safeOutput}
		scanner := services.NewScanService(classifier, &mocks.ReputationChecker{}, nil)
		history := &mocks.HistoryStore{}
		handler := NewScanHandler(scanner, history, nil, nil)

		_, err := handler.Handle(context.Background(), text)
		require.ErrorIs(t, err, entities.ErrInvalidInput)
		assert.Zero(t, classifier.Calls)
		assert.Empty(t, history.Records)
	}
}

func TestScanHandler_Handle_PhishingURL(t *testing.T) {
	classifier := &mocks.Classifier{Output: safeOutput}
	scanner := services.NewScanService(classifier, reputation.NewHeuristic(nil), nil)
	history := &mocks.HistoryStore{}
	handler := NewScanHandler(scanner, history, nil, nil)

	rec, err := handler.Handle(context.Background(), "Click http://phishing.example/login now")
	require.NoError(t, err)

	assert.Equal(t, entities.VerdictScam, rec.Verdict)
	assert.InDelta(t, 0.95, rec.Confidence, 1e-9)
	require.NotNil(t, rec.URLThreat)
	assert.True(t, rec.URLThreat.IsThreat)
	assert.Equal(t, entities.ThreatPhishing, rec.URLThreat.ThreatType)
	assert.Zero(t, classifier.Calls)
	require.Len(t, history.Records, 1)
}

func TestScanHandler_Handle_Indexes(t *testing.T) {
	classifier := &mocks.Classifier{Output: safeOutput}
	scanner := services.NewScanService(classifier, &mocks.ReputationChecker{}, nil)
	index := &mocks.ScanIndex{}
	similar := services.NewSimilarService(&mocks.Embedder{EmbeddingResult: []float32{1, 0}}, index)
	handler := NewScanHandler(scanner, &mocks.HistoryStore{}, similar, nil)

	rec, err := handler.Handle(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, index.Saved, 1)
	assert.Equal(t, rec.ID, index.Saved[0].ID)
}

func TestScanHandler_Handle_PrunesEvictedFromIndex(t *testing.T) {
	classifier := &mocks.Classifier{Output: safeOutput}
	scanner := services.NewScanService(classifier, &mocks.ReputationChecker{}, nil)
	history := &mocks.HistoryStore{Limit: 2}
	index := &mocks.ScanIndex{}
	similar := services.NewSimilarService(&mocks.Embedder{EmbeddingResult: []float32{1, 0}}, index)
	handler := NewScanHandler(scanner, history, similar, nil)

	first, err := handler.Handle(context.Background(), "one")
	require.NoError(t, err)
	_, err = handler.Handle(context.Background(), "two")
	require.NoError(t, err)
	assert.Empty(t, index.Deleted)

	_, err = handler.Handle(context.Background(), "three")
	require.NoError(t, err)

	assert.Equal(t, []string{first.ID}, index.Deleted)
	require.Len(t, index.Saved, 2)
	for _, saved := range index.Saved {
		assert.NotEqual(t, first.ID, saved.ID)
	}
}

func TestScanHandler_Handle_PruneFailureIgnored(t *testing.T) {
	classifier := &mocks.Classifier{Output: safeOutput}
	scanner := services.NewScanService(classifier, &mocks.ReputationChecker{}, nil)
	history := &mocks.HistoryStore{Limit: 1}
	index := &mocks.ScanIndex{DeleteErr: errors.New("index down")}
	similar := services.NewSimilarService(&mocks.Embedder{EmbeddingResult: []float32{1, 0}}, index)
	handler := NewScanHandler(scanner, history, similar, nil)

	_, err := handler.Handle(context.Background(), "one")
	require.NoError(t, err)
	rec, err := handler.Handle(context.Background(), "two")
	require.NoError(t, err)

	require.Len(t, history.Records, 1)
	assert.Equal(t, rec.ID, history.Records[0].ID)
}

func TestScanHandler_Handle_IndexFailureIgnored(t *testing.T) {
	classifier := &mocks.Classifier{Output: safeOutput}
	scanner := services.NewScanService(classifier, &mocks.ReputationChecker{}, nil)
	history := &mocks.HistoryStore{}
	similar := services.NewSimilarService(&mocks.Embedder{Err: errors.New("embedder down")}, &mocks.ScanIndex{})
	handler := NewScanHandler(scanner, history, similar, nil)

	rec, err := handler.Handle(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, entities.VerdictSafe, rec.Verdict)
	assert.Len(t, history.Records, 1)
}

func TestScanHandler_Handle_ClassifierUnavailable(t *testing.T) {
	classifier := &mocks.Classifier{Err: entities.ErrClassifierUnavailable}
	scanner := services.NewScanService(classifier, &mocks.ReputationChecker{}, nil)
	history := &mocks.HistoryStore{}
	handler := NewScanHandler(scanner, history, nil, nil)

	rec, err := handler.Handle(context.Background(), "hello friend")
	require.NoError(t, err)
	assert.Equal(t, entities.VerdictPossiblyScam, rec.Verdict)
	assert.InDelta(t, 0.5, rec.Confidence, 1e-9)
	require.Len(t, history.Records, 1)
}
