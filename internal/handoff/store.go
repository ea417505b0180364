// Package handoff models the one-time hand-off channel used by the OAuth
// redirect flow: a collaborator writes a JSON payload and a state marker,
// and exactly one import call consumes both.
package handoff

import (
	"context"
	"sync"
)

// Keys of the hand-off channel. The payload and marker are written together
// by the redirect flow and deleted together, along with the one-time state
// token, when an import consumes them.
const (
	PayloadKey = "linkedin_import_data"
	MarkerKey  = "linkedin_import_state"
	TokenKey   = "linkedin_oauth_state"

	// MarkerCompleted is the marker value the redirect flow writes once the
	// payload is ready.
	MarkerCompleted = "completed"
)

// Store is a string-keyed store injected into the orchestrator so it stays
// testable without a browser-like session environment.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error

	// Take atomically claims the hand-off channel: when markerKey holds
	// markerValue and payloadKey is present, it removes payloadKey,
	// markerKey, and extraKeys in one step and returns the payload. Any
	// other state leaves the store untouched. Check and removal must be a
	// single step so concurrent callers cannot both observe the payload.
	Take(ctx context.Context, payloadKey, markerKey, markerValue string, extraKeys ...string) (payload string, ok bool, err error)
}

// Consume reads the hand-off payload and clears the channel. The payload is
// destructively consumed in one atomic take: exactly one of any number of
// concurrent calls returns found=true; the rest see an absent payload. An
// empty-but-present payload is returned as found with an empty string so the
// caller can distinguish "empty data" from "no data".
func Consume(ctx context.Context, s Store) (payload string, found bool, err error) {
	return s.Take(ctx, PayloadKey, MarkerKey, MarkerCompleted, TokenKey)
}

// MemoryStore is an in-process Store for the CLI and for tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Take implements Store. The whole check-and-remove runs under one write
// lock, so a second concurrent taker finds the marker already gone.
func (m *MemoryStore) Take(_ context.Context, payloadKey, markerKey, markerValue string, extraKeys ...string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[markerKey] != markerValue {
		return "", false, nil
	}
	payload, ok := m.data[payloadKey]
	if !ok {
		return "", false, nil
	}

	delete(m.data, payloadKey)
	delete(m.data, markerKey)
	for _, k := range extraKeys {
		delete(m.data, k)
	}
	return payload, true, nil
}
