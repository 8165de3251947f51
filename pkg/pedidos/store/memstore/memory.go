// Package memstore is an in-memory order store used in tests.
package memstore

import (
	"context"
	"sync"

	"github.com/ordexa/pedidotrack/pkg/pedidos/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu     sync.RWMutex
	orders []store.Order
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{orders: []store.Order{}}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Load returns a copy of the table in stored order.
func (s *Store) Load(ctx context.Context) ([]store.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// UpsertMany merges by Pedido.
func (s *Store) UpsertMany(ctx context.Context, incoming []store.Order) (store.UpsertStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, stats := store.Merge(s.orders, incoming)
	s.orders = table
	return stats, nil
}
