package store

import (
	cartdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
)

// Cart returns a copy of the active cart, or false when none is loaded.
func (s *Store) Cart() (*cartdomain.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil, false
	}
	return s.cart.Clone(), true
}

// SetCart replaces the cart wholesale, as after a fetch. nil clears the slot.
func (s *Store) SetCart(c *cartdomain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = c.Clone()
}

// AppendCartItem inserts a server-confirmed new line.
func (s *Store) AppendCartItem(item cartdomain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		s.cart = &cartdomain.Cart{ID: item.CartID}
	}
	s.cart.Append(item)
}

// ReplaceCartItem swaps one line in place, predicted or confirmed.
func (s *Store) ReplaceCartItem(item cartdomain.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return false
	}
	return s.cart.Replace(item)
}

// SpliceCartItem removes one line, resubtracting its exact quantity and total.
func (s *Store) SpliceCartItem(itemID string) (cartdomain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return cartdomain.Item{}, false
	}
	return s.cart.Splice(itemID)
}

// FindCartItem reads a single line without copying the whole cart.
func (s *Store) FindCartItem(itemID string) (cartdomain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return cartdomain.Item{}, false
	}
	return s.cart.Find(itemID)
}

// ClearCart empties items and totals and unbinds the customer, keeping the
// cart shell so the backend's implicit singleton survives locally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart != nil {
		s.cart.Clear()
	}
}

// BindCartCustomer assigns or replaces the cart's customer.
func (s *Store) BindCartCustomer(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart != nil {
		s.cart.CustomerID = customerID
	}
}
