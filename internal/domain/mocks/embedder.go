package mocks

import "context"

// Embedder is a mock implementation of ports.Embedder.
type Embedder struct {
	EmbeddingResult []float32
	Err             error
}

// Embed returns the configured embedding or error.
func (m *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.EmbeddingResult, nil
}
