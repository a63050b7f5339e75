// Package cart holds the ephemeral per-user carts. Carts live in process
// memory only: they are lost on restart and are never written to the
// database. Availability of the selected items is not checked here; that
// happens at checkout.
package cart

import (
	"sync"

	"github.com/campuscanteen/canteen-api/models"
)

type Line struct {
	Item models.MenuItem `json:"item"`
	Qty  int             `json:"qty"`
}

type Cart struct {
	Lines []Line `json:"lines"`
	Total int    `json:"total"`
}

type Store struct {
	mu    sync.Mutex
	carts map[uint]map[uint]*Line
}

func NewStore() *Store {
	return &Store{carts: make(map[uint]map[uint]*Line)}
}

// Add puts qty of the given menu item into the user's cart, merging with
// an existing line for the same item.
func (s *Store) Add(userID uint, item models.MenuItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	if lines == nil {
		lines = make(map[uint]*Line)
		s.carts[userID] = lines
	}
	if line, ok := lines[item.ID]; ok {
		line.Qty += qty
		line.Item = item
		return
	}
	lines[item.ID] = &Line{Item: item, Qty: qty}
}

// SetQty replaces the quantity of a line. A quantity of zero or less
// removes the line. Returns false if the item is not in the cart.
func (s *Store) SetQty(userID, menuID uint, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.carts[userID][menuID]
	if !ok {
		return false
	}
	if qty <= 0 {
		delete(s.carts[userID], menuID)
		return true
	}
	line.Qty = qty
	return true
}

// Remove deletes a line. Returns false if the item is not in the cart.
func (s *Store) Remove(userID, menuID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[userID][menuID]; !ok {
		return false
	}
	delete(s.carts[userID], menuID)
	return true
}

// Get returns a snapshot of the user's cart with its running total.
func (s *Store) Get(userID uint) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cart Cart
	for _, line := range s.carts[userID] {
		cart.Lines = append(cart.Lines, *line)
		cart.Total += line.Item.Price * line.Qty
	}
	return cart
}

// Clear empties the user's cart, typically after a successful checkout.
func (s *Store) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
