package store

import (
	"errors"
	"sync"

	cartdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

// Aggregate names one independently-guarded collection.
type Aggregate string

const (
	AggCart     Aggregate = "cart"
	AggWaitlist Aggregate = "waitlist"
	AggOrders   Aggregate = "orders"
)

// ErrBusy means a mutating operation is already in flight for the aggregate.
// The optimistic protocol assumes a single predictor, so a second mutation is
// rejected rather than interleaved.
var ErrBusy = errors.New("another mutation is in flight for this aggregate")

// Flags is the per-collection UI feedback sub-state.
type Flags struct {
	Loading    bool
	Err        error
	LastAction string
}

// Store holds the local view of the three aggregates. All writes go through
// the app services and conversion pipelines; reads hand out copies.
type Store struct {
	mu sync.Mutex

	cart      *cartdomain.Cart
	cartFlags Flags

	waitlist      []wldomain.Item
	waitlistCount int
	waitlistFlags Flags

	orders     []orderdomain.Order
	orderCount int
	orderFlags Flags

	busy map[Aggregate]bool
}

func New() *Store {
	return &Store{busy: make(map[Aggregate]bool)}
}

// Begin claims every named aggregate for one mutating operation, or claims
// nothing and returns ErrBusy. It also marks the aggregates loading and
// records the action label.
func (s *Store) Begin(action string, aggs ...Aggregate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, agg := range aggs {
		if s.busy[agg] {
			return ErrBusy
		}
	}
	for _, agg := range aggs {
		s.busy[agg] = true
		f := s.flags(agg)
		f.Loading = true
		f.Err = nil
		f.LastAction = action
	}
	return nil
}

// End releases the aggregates and records the outcome of the operation.
func (s *Store) End(err error, aggs ...Aggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, agg := range aggs {
		delete(s.busy, agg)
		f := s.flags(agg)
		f.Loading = false
		f.Err = err
	}
}

func (s *Store) flags(agg Aggregate) *Flags {
	switch agg {
	case AggWaitlist:
		return &s.waitlistFlags
	case AggOrders:
		return &s.orderFlags
	default:
		return &s.cartFlags
	}
}

func (s *Store) FlagsOf(agg Aggregate) Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.flags(agg)
}
