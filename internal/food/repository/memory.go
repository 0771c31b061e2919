package repository

import (
	"context"
	"sync"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
)

// MemoryRepo keeps records in process memory. It is the default driver and
// the one used by handler and service tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*food.Food
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*food.Food)}
}

func (m *MemoryRepo) Save(_ context.Context, f *food.Food) (*food.Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prepare(f)
	if _, ok := m.store[f.ID]; ok {
		return nil, storageError("memory save", ErrDuplicateID)
	}
	stored := *f
	m.store[f.ID] = &stored
	m.order = append(m.order, f.ID)
	out := stored
	return &out, nil
}

func (m *MemoryRepo) FindAll(_ context.Context) ([]*food.Food, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*food.Food, 0, len(m.order))
	for _, id := range m.order {
		f := *m.store[id]
		out = append(out, &f)
	}
	return out, nil
}

func (m *MemoryRepo) Ping(_ context.Context) error { return nil }
