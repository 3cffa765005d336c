package storage

import (
	"context"
	"sync"

	"lifedash/internal/store"
)

// MemoryMedium keeps the document in process memory. Used for tests and
// ephemeral runs; nothing survives the process.
type MemoryMedium struct {
	mu   sync.Mutex
	body []byte
	set  bool
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{}
}

// NewMemoryMediumWith seeds the medium with a pre-existing payload.
func NewMemoryMediumWith(body []byte) *MemoryMedium {
	return &MemoryMedium{body: append([]byte(nil), body...), set: true}
}

func (m *MemoryMedium) Read(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), m.body...), nil
}

func (m *MemoryMedium) Write(_ context.Context, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.body = append([]byte(nil), body...)
	m.set = true
	return nil
}
