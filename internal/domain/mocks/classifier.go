// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// Classifier is a mock implementation of ports.Classifier.
type Classifier struct {
	// Classify return values
	Output string
	Err    error

	// Panic makes Classify panic with this value when non-nil.
	Panic any

	// Recorded calls
	Calls  int
	Inputs []string

	mu sync.Mutex
}

// Classify returns the configured output or error.
func (m *Classifier) Classify(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.Inputs = append(m.Inputs, text)
	if m.Panic != nil {
		panic(m.Panic)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Output, nil
}

// CallCount returns Calls under the mock's lock.
func (m *Classifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// ReputationChecker is a mock implementation of ports.ReputationChecker.
type ReputationChecker struct {
	Result entities.URLThreat

	// Recorded calls
	Checked []string
}

// Check returns the configured result.
func (m *ReputationChecker) Check(ctx context.Context, url string) entities.URLThreat {
	m.Checked = append(m.Checked, url)
	return m.Result
}
