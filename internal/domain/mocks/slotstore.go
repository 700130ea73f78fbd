package mocks

import (
	"context"
	"sync"
)

// SlotStore is an in-memory implementation of ports.SlotStore.
type SlotStore struct {
	mu    sync.Mutex
	Slots map[string]string

	// Errors returned by the matching operation when non-nil
	GetErr    error
	PutErr    error
	DeleteErr error
}

// NewSlotStore creates an empty slot store.
func NewSlotStore() *SlotStore {
	return &SlotStore{Slots: make(map[string]string)}
}

// GetSlot returns the stored value or the configured error.
func (m *SlotStore) GetSlot(ctx context.Context, name string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Slots[name]
	return v, ok, nil
}

// PutSlot stores the value or returns the configured error.
func (m *SlotStore) PutSlot(ctx context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	if m.Slots == nil {
		m.Slots = make(map[string]string)
	}
	m.Slots[name] = value
	return nil
}

// DeleteSlot removes the value or returns the configured error.
func (m *SlotStore) DeleteSlot(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Slots, name)
	return nil
}
