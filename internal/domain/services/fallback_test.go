package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

func TestFallback(t *testing.T) {
	tests := []struct {
		name     string
		cause    error
		contains string
	}{
		{
			name:     "embeds cause message",
			cause:    fmt.Errorf("%w: connection refused", entities.ErrClassifierUnavailable),
			contains: "classifier unavailable: connection refused",
		},
		{
			name:     "nil cause",
			cause:    nil,
			contains: "Unknown error",
		},
		{
			name:     "empty message",
			cause:    errors.New(""),
			contains: "Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Fallback("hello friend", tt.cause)

			assert.NotEmpty(t, rec.ID)
			assert.False(t, rec.Timestamp.IsZero())
			assert.Equal(t, "hello friend", rec.InputText)
			assert.Equal(t, entities.VerdictPossiblyScam, rec.Verdict)
			assert.Equal(t, 0.5, rec.Confidence)
			assert.Contains(t, rec.Explanation, "Unable to fully analyze")
			assert.Contains(t, rec.Explanation, tt.contains)
			assert.Nil(t, rec.URLThreat)
		})
	}
}
