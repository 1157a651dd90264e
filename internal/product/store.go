package product

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

// Store is the in-memory product catalog, seeded with sample data at
// startup. Identifiers come from a monotonic counter, never from scanning
// existing entries.
type Store struct {
	mu       sync.RWMutex
	nextID   int
	byID     map[int]*Product
	products []*Product // insertion order
}

func NewStore() *Store {
	s := &Store{
		nextID: 1,
		byID:   make(map[int]*Product),
	}
	for _, p := range seed() {
		s.Create(p)
	}
	return s
}

func seed() []Product {
	return []Product{
		{Name: "Product 1", Description: "Description 1", Price: decimal.NewFromFloat(19.99), StockQuantity: 100},
		{Name: "Product 2", Description: "Description 2", Price: decimal.NewFromFloat(29.99), StockQuantity: 150},
		{Name: "Product 3", Description: "Description 3", Price: decimal.NewFromFloat(39.99), StockQuantity: 200},
	}
}

func (s *Store) Create(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++

	stored := p
	s.byID[p.ID] = &stored
	s.products = append(s.products, &stored)

	return p
}

func (s *Store) Get(id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return *p, nil
}

func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}
