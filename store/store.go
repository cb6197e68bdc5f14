package store

import (
	"sync"
	"time"
)

// Entry is one stored value with its provenance
type Entry struct {
	Value     int       `yaml:"value"`
	Session   string    `yaml:"session,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// KV is a small persistent key-value store
type KV interface {
	Get(key string) (Entry, bool, error)
	Put(key string, e Entry) error
}

// MemoryStore keeps entries in process memory
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (m *MemoryStore) Get(key string) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	return e, ok, nil
}

func (m *MemoryStore) Put(key string, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = e
	return nil
}
