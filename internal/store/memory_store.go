package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var errWriteRejected = errors.New("write rejected")

// MemoryStore is a process-local Store for tests and dry runs.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
	// FailPut makes every write fail with this error when set.
	FailPut error
	// FailOn rejects any write touching this collection, the whole batch included.
	FailOn string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), doc...), nil
}

func (m *MemoryStore) Put(ctx context.Context, name string, doc []byte) error {
	return m.PutAll(ctx, map[string][]byte{name: doc})
}

func (m *MemoryStore) PutAll(_ context.Context, docs map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailPut != nil {
		return m.FailPut
	}
	if _, ok := docs[m.FailOn]; ok && m.FailOn != "" {
		return fmt.Errorf("save %s: %w", m.FailOn, errWriteRejected)
	}
	for name, doc := range docs {
		m.docs[name] = append([]byte(nil), doc...)
	}
	return nil
}
