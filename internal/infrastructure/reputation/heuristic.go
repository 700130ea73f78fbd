// Package reputation provides URL reputation checks.
package reputation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

var keywordThreats = []struct {
	keyword string
	threat  entities.ThreatType
}{
	{"phishing", entities.ThreatPhishing},
	{"scam", entities.ThreatPhishing},
	{"suspicious", entities.ThreatPhishing},
	{"malware", entities.ThreatMalware},
}

// Heuristic flags URLs whose text contains a known-bad keyword.
// It never fails: any internal error yields a not-a-threat result.
type Heuristic struct {
	logger *slog.Logger
}

// NewHeuristic creates a keyword-based reputation checker.
func NewHeuristic(logger *slog.Logger) *Heuristic {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Heuristic{logger: logger}
}

// Check reports whether url is a known threat.
func (h *Heuristic) Check(ctx context.Context, url string) (result entities.URLThreat) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WarnContext(ctx, "reputation check failed", "url", url, "panic", r)
			result = entities.URLThreat{}
		}
	}()

	if err := ctx.Err(); err != nil {
		h.logger.DebugContext(ctx, "reputation check skipped", "url", url, "error", err)
		return entities.URLThreat{}
	}

	lower := strings.ToLower(url)
	for _, kt := range keywordThreats {
		if strings.Contains(lower, kt.keyword) {
			return entities.URLThreat{
				IsThreat:     true,
				ThreatType:   kt.threat,
				PlatformType: entities.PlatformAny,
			}
		}
	}
	return entities.URLThreat{}
}
