package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/scamguard/internal/application/handlers"
	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/mocks"
	"github.com/ersonp/scamguard/internal/domain/services"
	"github.com/ersonp/scamguard/internal/infrastructure/config"
	"github.com/ersonp/scamguard/internal/infrastructure/reputation"
)

type testAPI struct {
	server     *httptest.Server
	classifier *mocks.Classifier
}

func newTestAPI(t *testing.T, cfg config.ServerConfig) *testAPI {
	t.Helper()

	classifier := &mocks.Classifier{Output: `{"result": "SAFE", "confidence": 0.9, "explanation": "Looks fine."}`}
	scanner := services.NewScanService(classifier, reputation.NewHeuristic(nil), nil)
	history := services.NewHistoryService(mocks.NewSlotStore(), nil)

	router := NewRouter(
		handlers.NewScanHandler(scanner, history, nil, nil),
		handlers.NewHistoryHandler(history, nil, nil),
		cfg,
		nil,
	)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testAPI{server: server, classifier: classifier}
}

func defaultServerConfig() config.ServerConfig {
	return config.ServerConfig{
		AllowedOrigins: []string{"http://localhost:5173"},
		RateLimit:      100,
		Burst:          100,
	}
}

func (a *testAPI) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), method, a.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestRouter_Health(t *testing.T) {
	api := newTestAPI(t, defaultServerConfig())

	resp := api.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ScanAndHistory(t *testing.T) {
	api := newTestAPI(t, defaultServerConfig())

	resp := api.do(t, http.MethodPost, "/api/scan", `{"text": "hello friend"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	first := decode[entities.ScanRecord](t, resp)
	assert.Equal(t, entities.VerdictSafe, first.Verdict)
	assert.Nil(t, first.URLThreat)

	resp = api.do(t, http.MethodPost, "/api/scan", `{"text": "Click http://phishing.example/login now"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode[entities.ScanRecord](t, resp)
	assert.Equal(t, entities.VerdictScam, second.Verdict)
	require.NotNil(t, second.URLThreat)
	assert.True(t, second.URLThreat.IsThreat)
	assert.Equal(t, 1, api.classifier.CallCount())

	resp = api.do(t, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]entities.ScanRecord](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	resp = api.do(t, http.MethodGet, "/api/history/"+first.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, first.ID, decode[entities.ScanRecord](t, resp).ID)
}

func TestRouter_Scan_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "blank text", body: `{"text": "   "}`},
		{name: "missing text", body: `{}`},
		{name: "invalid json", body: `{"text":`},
	}

	api := newTestAPI(t, defaultServerConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.do(t, http.MethodPost, "/api/scan", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[map[string]string](t, resp)
			assert.NotEmpty(t, body["error"])
		})
	}
	assert.Zero(t, api.classifier.CallCount())
}

func TestRouter_History_Empty(t *testing.T) {
	api := newTestAPI(t, defaultServerConfig())

	resp := api.do(t, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]entities.ScanRecord](t, resp)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRouter_HistoryItem_NotFound(t *testing.T) {
	api := newTestAPI(t, defaultServerConfig())

	resp := api.do(t, http.MethodGet, "/api/history/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_ClearHistory(t *testing.T) {
	api := newTestAPI(t, defaultServerConfig())
	api.do(t, http.MethodPost, "/api/scan", `{"text": "hello"}`)

	resp := api.do(t, http.MethodDelete, "/api/history", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/history", "")
	assert.Empty(t, decode[[]entities.ScanRecord](t, resp))
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.RateLimit = 0.001
	cfg.Burst = 2
	api := newTestAPI(t, cfg)

	for range 2 {
		resp := api.do(t, http.MethodPost, "/api/scan", `{"text": "hello"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := api.do(t, http.MethodPost, "/api/scan", `{"text": "hello"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, 2, api.classifier.CallCount())

	// Reads are not limited
	resp = api.do(t, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_CORS(t *testing.T) {
	api := newTestAPI(t, defaultServerConfig())

	req, err := http.NewRequestWithContext(t.Context(), http.MethodOptions, api.server.URL+"/api/scan", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
