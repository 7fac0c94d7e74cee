// Package cart holds the session-scoped shopping cart. A Store belongs to one
// browsing session; it is never persisted server-side.
package cart

import (
	"sync"

	"shophub/internal/domain"
)

// Line pairs a product snapshot with a quantity. The product data (price
// included) is copied at add time, so later catalog changes do not affect
// lines already in the cart.
type Line struct {
	Product  domain.Product
	Quantity int
}

// Store accumulates cart lines in insertion order. At most one line exists
// per product id; adding the same product again merges quantities.
type Store struct {
	mu    sync.Mutex
	lines []Line
	subs  []func()
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Add merges quantity into an existing line for the product, or appends a new
// line. Quantities below 1 are coerced to 1.
func (s *Store) Add(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{Product: p, Quantity: quantity})
	}
	s.unlockAndNotify()
}

// Remove deletes the line for productID. No-op if absent.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	s.removeLocked(productID)
	s.unlockAndNotify()
}

// UpdateQuantity sets the line's quantity. A value below 1 removes the line
// instead of keeping it at zero. Line order is preserved.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	if quantity < 1 {
		s.removeLocked(productID)
	} else {
		for i := range s.lines {
			if s.lines[i].Product.ID == productID {
				s.lines[i].Quantity = quantity
				break
			}
		}
	}
	s.unlockAndNotify()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.unlockAndNotify()
}

// Count returns the sum of all line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal returns the sum of price x quantity over all lines, using the
// snapshot prices. No rounding is applied here; that is a display concern.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, l := range s.lines {
		sum += l.Product.Price * float64(l.Quantity)
	}
	return sum
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// OrderItems projects the cart into order line items for submission.
func (s *Store) OrderItems() []domain.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.OrderItem, 0, len(s.lines))
	for _, l := range s.lines {
		items = append(items, domain.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		})
	}
	return items
}

func (s *Store) removeLocked(productID string) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// unlockAndNotify releases the lock, then fires subscribers so they can call
// back into the store.
func (s *Store) unlockAndNotify() {
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
