package store

import (
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
)

func (s *Store) Orders() []orderdomain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]orderdomain.Order(nil), s.orders...)
}

// OrderCount is the server-reported total, which may exceed the loaded page.
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderCount
}

func (s *Store) FindOrder(orderID string) (orderdomain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return orderdomain.Order{}, false
}

// ReplaceOrders installs a fresh filtered fetch wholesale.
func (s *Store) ReplaceOrders(orders []orderdomain.Order, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]orderdomain.Order(nil), orders...)
	if count < len(orders) {
		count = len(orders)
	}
	s.orderCount = count
}

// PrependOrder puts a freshly checked-out order at the front of the list.
func (s *Store) PrependOrder(o orderdomain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]orderdomain.Order{o}, s.orders...)
	s.orderCount++
}

// DropConvertedOrder removes the order consumed by an order-to-cart
// conversion, matching invoice number first, id second. The count is
// decremented and floor-clamped at zero.
func (s *Store) DropConvertedOrder(converted orderdomain.ConvertedOrder) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rest, cut := orderdomain.DropConverted(s.orders, converted)
	if !cut {
		return false
	}
	s.orders = rest
	if s.orderCount--; s.orderCount < 0 {
		s.orderCount = 0
	}
	return true
}
