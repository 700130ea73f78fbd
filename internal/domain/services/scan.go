package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/domain/ports"
)

// ThreatConfidence is the confidence assigned when a URL is flagged by the reputation check.
const ThreatConfidence = 0.95

// ScanService runs the scan pipeline: URL reputation, classification, normalization.
type ScanService struct {
	classifier ports.Classifier
	reputation ports.ReputationChecker
	logger     *slog.Logger
}

// NewScanService creates a new scan service.
func NewScanService(classifier ports.Classifier, reputation ports.ReputationChecker, logger *slog.Logger) *ScanService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ScanService{
		classifier: classifier,
		reputation: reputation,
		logger:     logger,
	}
}

// Scan analyzes text and returns exactly one record. It never fails: any failure
// yields a fallback record. text must be non-blank; callers reject blank input.
func (s *ScanService) Scan(ctx context.Context, text string) (rec entities.ScanRecord) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected failure: %v", r)
			s.logger.Error("scan panicked", "error", err)
			rec = Fallback(text, err)
		}
	}()

	urls := ExtractURLs(text)

	// Only the first URL is checked against reputation.
	var urlThreat *entities.URLThreat
	if len(urls) > 0 {
		result := s.reputation.Check(ctx, urls[0])
		urlThreat = &result
		if result.IsThreat {
			s.logger.Info("url flagged", "url", urls[0], "threat_type", result.ThreatType)
			return threatRecord(text, urls[0], result)
		}
	}

	raw, err := s.classifier.Classify(ctx, text)
	if err != nil {
		s.logger.Warn("classification failed, using fallback", "error", err)
		return Fallback(text, err)
	}

	analysis, err := normalize(raw)
	if err != nil {
		s.logger.Warn("classifier response unusable, using defaults", "error", err)
	}

	return entities.ScanRecord{
		ID:          NewScanID(),
		Timestamp:   newTimestamp(),
		InputText:   text,
		Verdict:     analysis.Verdict,
		Confidence:  analysis.Confidence,
		Explanation: analysis.Explanation,
		URLThreat:   urlThreat,
	}
}

// threatRecord builds the short-circuit record for a flagged URL.
func threatRecord(text, url string, threat entities.URLThreat) entities.ScanRecord {
	category := "malicious"
	if threat.ThreatType != "" {
		category = strings.ToLower(string(threat.ThreatType))
	}

	return entities.ScanRecord{
		ID:         NewScanID(),
		Timestamp:  newTimestamp(),
		InputText:  text,
		Verdict:    entities.VerdictScam,
		Confidence: ThreatConfidence,
		Explanation: fmt.Sprintf(
			"This contains a URL (%s) that has been flagged as %s. Avoid visiting this site as it may compromise your security.",
			url, category,
		),
		URLThreat: &threat,
	}
}
