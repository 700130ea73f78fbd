package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/mocks"
	"github.com/ersonp/scamguard/internal/domain/services"
)

func newTestHistoryHandler(t *testing.T, n int, similar *services.SimilarService) (*HistoryHandler, []entities.ScanRecord) {
	t.Helper()
	history := services.NewHistoryService(mocks.NewSlotStore(), nil)

	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	var recorded []entities.ScanRecord
	for i := range n {
		rec := entities.ScanRecord{
			ID:          fmt.Sprintf("id-%d", i),
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
			InputText:   fmt.Sprintf("message %d | with pipe", i),
			Verdict:     entities.VerdictSafe,
			Confidence:  0.8,
			Explanation: "fine",
		}
		if i == 0 {
			rec.Verdict = entities.VerdictScam
			rec.Confidence = 0.95
			rec.URLThreat = &entities.URLThreat{IsThreat: true, ThreatType: entities.ThreatPhishing, PlatformType: entities.PlatformAny}
		}
		history.Record(context.Background(), rec)
		recorded = append([]entities.ScanRecord{rec}, recorded...)
	}

	return NewHistoryHandler(history, similar, nil), recorded
}

func TestHistoryHandler_HandleList(t *testing.T) {
	handler, recorded := newTestHistoryHandler(t, 3, nil)

	list := handler.HandleList(context.Background())
	require.Len(t, list, 3)
	assert.Equal(t, recorded[0].ID, list[0].ID)
	assert.Equal(t, "id-2", list[0].ID)
}

func TestHistoryHandler_HandleShow(t *testing.T) {
	handler, _ := newTestHistoryHandler(t, 3, nil)

	rec, err := handler.HandleShow(context.Background(), "id-0")
	require.NoError(t, err)
	assert.Equal(t, entities.VerdictScam, rec.Verdict)
	require.NotNil(t, rec.URLThreat)

	_, err = handler.HandleShow(context.Background(), "missing")
	require.ErrorIs(t, err, entities.ErrNotFound)
}

func TestHistoryHandler_HandleClear(t *testing.T) {
	index := &mocks.ScanIndex{}
	similar := services.NewSimilarService(&mocks.Embedder{}, index)
	handler, _ := newTestHistoryHandler(t, 3, similar)

	handler.HandleClear(context.Background())
	assert.Empty(t, handler.HandleList(context.Background()))
	assert.Equal(t, 1, index.DeleteAllCalls)
}

func TestHistoryHandler_HandleClear_IndexFailureIgnored(t *testing.T) {
	index := &mocks.ScanIndex{DeleteAllErr: errors.New("qdrant down")}
	similar := services.NewSimilarService(&mocks.Embedder{}, index)
	handler, _ := newTestHistoryHandler(t, 2, similar)

	handler.HandleClear(context.Background())
	assert.Empty(t, handler.HandleList(context.Background()))
}

func TestHistoryHandler_HandleExport_JSON(t *testing.T) {
	handler, recorded := newTestHistoryHandler(t, 2, nil)

	var buf bytes.Buffer
	n, err := handler.HandleExport(context.Background(), &buf, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var got []entities.ScanRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, recorded[0].ID, got[0].ID)
	assert.Contains(t, buf.String(), `"safeBrowsingResult"`)
}

func TestHistoryHandler_HandleExport_CSV(t *testing.T) {
	handler, _ := newTestHistoryHandler(t, 2, nil)

	var buf bytes.Buffer
	_, err := handler.HandleExport(context.Background(), &buf, FormatCSV)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, []string{"id-1", "2026-04-01T10:01:00Z", "SAFE", "0.80", "", "fine", "message 1 | with pipe"}, rows[1])
	assert.Equal(t, "PHISHING", rows[2][4])
}

func TestHistoryHandler_HandleExport_Markdown(t *testing.T) {
	handler, _ := newTestHistoryHandler(t, 2, nil)

	var buf bytes.Buffer
	_, err := handler.HandleExport(context.Background(), &buf, FormatMarkdown)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Scan History\n\nTotal: 2 scans"))
	assert.Contains(t, out, `message 0 \| with pipe`)
	assert.Contains(t, out, "| 95% |")
}

func TestHistoryHandler_HandleExport_Errors(t *testing.T) {
	handler, _ := newTestHistoryHandler(t, 1, nil)

	var buf bytes.Buffer
	_, err := handler.HandleExport(context.Background(), &buf, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	empty, _ := newTestHistoryHandler(t, 0, nil)
	_, err = empty.HandleExport(context.Background(), &buf, FormatJSON)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"ünïcödé text", 6, "ünï..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}

func TestThreatLabel(t *testing.T) {
	assert.Empty(t, threatLabel(nil))
	assert.Equal(t, "none", threatLabel(&entities.URLThreat{}))
	assert.Equal(t, "unknown", threatLabel(&entities.URLThreat{IsThreat: true}))
	assert.Equal(t, "MALWARE", threatLabel(&entities.URLThreat{IsThreat: true, ThreatType: entities.ThreatMalware}))
}
