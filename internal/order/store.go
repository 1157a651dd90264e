package order

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

// Store is the authoritative in-memory registry of orders. It lives for the
// whole process and is never persisted. Every lookup returns a copy, so an
// order is only ever visible to callers with all fields finalized.
type Store struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]*Order
	orders []*Order // insertion order
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		byID:   make(map[int]*Order),
	}
}

// Create allocates the next identifier, stamps the order with the current
// UTC time and the Pending status, and stores it. The total is the exact
// sum of unitPrice*quantity over the items and is never recomputed.
func (s *Store) Create(userID int, items []Item) Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := &Order{
		ID:          s.nextID,
		UserID:      userID,
		Items:       append(make([]Item, 0, len(items)), items...),
		TotalAmount: total,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.byID[o.ID] = o
	s.orders = append(s.orders, o)

	return copyOrder(o)
}

func (s *Store) Get(id int) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, copyOrder(o))
	}
	return out
}

// ListByUser returns the user's orders in insertion order. No matches is a
// normal outcome, not an error.
func (s *Store) ListByUser(userID int) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

// UpdateStatus overwrites the status field verbatim and returns the updated
// order. Items, total, owner and creation time are untouched.
func (s *Store) UpdateStatus(id int, status Status) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	o.Status = status
	return copyOrder(o), nil
}

func copyOrder(o *Order) Order {
	cp := *o
	cp.Items = append(make([]Item, 0, len(o.Items)), o.Items...)
	return cp
}
