package openai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/scamguard/internal/infrastructure/config"
)

func TestNewEmbedder(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.EmbedderConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     config.EmbedderConfig{APIKey: "test-key"},
			wantErr: false,
		},
		{
			name:    "valid config with model",
			cfg:     config.EmbedderConfig{APIKey: "test-key", Model: "text-embedding-3-large"},
			wantErr: false,
		},
		{
			name:    "missing API key",
			cfg:     config.EmbedderConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emb, err := NewEmbedder(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, emb)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, emb)
		})
	}
}

func TestEmbedder_Embed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/embeddings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"model":  "text-embedding-3-small",
			"data": []map[string]any{
				{"object": "embedding", "index": 0, "embedding": []float32{0.25, -0.5, 1}},
			},
		})
	}))
	t.Cleanup(ts.Close)

	emb, err := NewEmbedder(config.EmbedderConfig{APIKey: "k", Endpoint: ts.URL})
	require.NoError(t, err)

	vec, err := emb.Embed(t.Context(), "you won a prize")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, -0.5, 1}, vec)
}

func TestEmbedder_Embed_Error(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	t.Cleanup(ts.Close)

	emb, err := NewEmbedder(config.EmbedderConfig{APIKey: "k", Endpoint: ts.URL})
	require.NoError(t, err)

	_, err = emb.Embed(t.Context(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating embeddings")
}
