package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/vistula/firstapi/internal/product/store/db"
)

// InMemoryStore implements ProductStore using an in-memory map.
// Ids are assigned sequentially starting at 1, so id order is insertion order.
type InMemoryStore struct {
	mu       sync.RWMutex
	products map[int64]db.Product
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		products: make(map[int64]db.Product),
		nextID:   1,
	}
}

func (s *InMemoryStore) Save(_ context.Context, product db.Product) (db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == 0 {
		product.ID = s.nextID
		s.nextID++
		s.products[product.ID] = product
		return product, nil
	}

	if _, exists := s.products[product.ID]; !exists {
		return db.Product{}, ErrNoRows
	}
	s.products[product.ID] = product
	return product, nil
}

// FindByID retrieves a product by its ID.
func (s *InMemoryStore) FindByID(_ context.Context, id int64) (db.Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok, nil
}

// FindAll retrieves all products.
func (s *InMemoryStore) FindAll(_ context.Context) ([]db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]db.Product, 0, len(s.products))
	for _, id := range slices.Sorted(maps.Keys(s.products)) {
		list = append(list, s.products[id])
	}
	return list, nil
}

// DeleteByID deletes a product by its ID.
func (s *InMemoryStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id)
	return nil
}

func (s *InMemoryStore) Ping(context.Context) error { return nil }
