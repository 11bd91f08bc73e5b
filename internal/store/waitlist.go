package store

import (
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

func (s *Store) Waitlist() []wldomain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]wldomain.Item(nil), s.waitlist...)
}

func (s *Store) WaitlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waitlistCount
}

// WaitlistGroup returns the entries of one customer, in display order.
func (s *Store) WaitlistGroup(customerID string) []wldomain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	var group []wldomain.Item
	for _, it := range s.waitlist {
		if it.CustomerID == customerID {
			group = append(group, it)
		}
	}
	return group
}

// WaitlistCustomer resolves the customer owning a waitlist entry.
func (s *Store) WaitlistCustomer(itemID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.waitlist {
		if it.ID == itemID {
			return it.CustomerID, true
		}
	}
	return "", false
}

// ReplaceWaitlist installs a fresh fetch wholesale.
func (s *Store) ReplaceWaitlist(items []wldomain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist = append([]wldomain.Item(nil), items...)
	s.waitlistCount = len(s.waitlist)
}

// ReconcileWaitlist merges a bulk result and re-derives the count.
func (s *Store) ReconcileWaitlist(res wldomain.BulkResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist = wldomain.Reconcile(s.waitlist, res)
	s.waitlistCount = len(s.waitlist)
}

func (s *Store) DropWaitlistItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist = wldomain.DropByID(s.waitlist, itemID)
	s.waitlistCount = len(s.waitlist)
}

func (s *Store) DropWaitlistByCustomer(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist = wldomain.DropByCustomer(s.waitlist, customerID)
	s.waitlistCount = len(s.waitlist)
}

func (s *Store) DropWaitlistByCart(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist = wldomain.DropByCart(s.waitlist, cartID)
	s.waitlistCount = len(s.waitlist)
}
