// Package storage provides the persistence adapters behind the order engine:
// an in-process store for standalone runs, Redis for shared deployments, a
// Postgres-backed catalog loader and a Kafka event publisher.
package storage

import (
	"context"
	"sync"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
)

// MemoryStore keeps orders in a map. Copies go in and out so callers can
// never mutate stored state.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

var _ order.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]*domain.Order)}
}

func (s *MemoryStore) SaveOrder(_ context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o.Snapshot()
	return nil
}

func (s *MemoryStore) LoadOrder(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o.Snapshot(), nil
}
