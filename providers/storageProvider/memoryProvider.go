package storageprovider

import (
	"context"
	"sync"

	"assetdesk/providers"
)

// MemoryProvider keeps entries for the life of the process only.
type MemoryProvider struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryProvider() providers.StorageProvider {
	return &MemoryProvider{entries: make(map[string]string)}
}

func (m *MemoryProvider) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryProvider) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryProvider) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *MemoryProvider) Close() error {
	return nil
}
