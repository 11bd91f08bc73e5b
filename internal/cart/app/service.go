package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
)

var (
	ErrNoCart          = errors.New("no active cart")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("unit price cannot be negative")
)

// Service owns every cart mutation. In-place edits follow the optimistic
// protocol in mutation.go; fetches replace the stored cart wholesale.
type Service struct {
	api   API
	store *store.Store
	log   *slog.Logger
}

func NewService(api API, st *store.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, store: st, log: log}
}

// Refresh fetches the active cart and installs it wholesale.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.store.Begin("cart.fetch", store.AggCart); err != nil {
		return err
	}
	err := s.Reload(ctx)
	s.store.End(err, store.AggCart)
	return err
}

// Reload is the unguarded fetch-and-replace. It doubles as the rollback path
// of a failed prediction and as a step inside conversion pipelines, which
// hold the aggregate guard themselves.
func (s *Service) Reload(ctx context.Context) error {
	cart, err := s.api.FetchActive(ctx)
	if err != nil {
		return err
	}
	s.store.SetCart(cart)
	return nil
}

// AddItem creates a new line. The backend creates the cart implicitly on the
// first add, so no local cart is required up front.
func (s *Service) AddItem(ctx context.Context, in AddItemInput) (domain.Item, error) {
	if in.Quantity < 1 {
		return domain.Item{}, ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return domain.Item{}, ErrInvalidPrice
	}

	if err := s.store.Begin("cart.add_item", store.AggCart); err != nil {
		return domain.Item{}, err
	}

	if cart, ok := s.store.Cart(); ok {
		in.CartID = cart.ID
	}

	confirmed, err := s.api.AddItem(ctx, in)
	if err != nil {
		s.store.End(err, store.AggCart)
		return domain.Item{}, err
	}

	s.store.AppendCartItem(confirmed)
	s.store.End(nil, store.AggCart)
	return confirmed, nil
}

// SetQuantity moves a line to an absolute quantity. Anything below 1 is a
// no-op before the predict phase: no remote call, no state change.
func (s *Service) SetQuantity(ctx context.Context, itemID string, quantity int) (domain.Item, error) {
	current, ok := s.store.FindCartItem(itemID)
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}
	if quantity < 1 {
		return current, nil
	}
	if quantity == current.Quantity {
		return current, nil
	}

	predicted := current
	predicted.Quantity = quantity
	predicted.TotalPrice = predicted.LineTotal()

	return s.mutateItem(ctx, "cart.set_quantity", predicted, UpdateItemInput{
		ItemID:   itemID,
		Quantity: &quantity,
	})
}

// Increment raises the quantity by one.
func (s *Service) Increment(ctx context.Context, itemID string) (domain.Item, error) {
	current, ok := s.store.FindCartItem(itemID)
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}
	return s.SetQuantity(ctx, itemID, current.Quantity+1)
}

// Decrement lowers the quantity by one, flooring at 1.
func (s *Service) Decrement(ctx context.Context, itemID string) (domain.Item, error) {
	current, ok := s.store.FindCartItem(itemID)
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}
	return s.SetQuantity(ctx, itemID, current.Quantity-1)
}

// SetUnitPrice applies a manual per-line price override.
func (s *Service) SetUnitPrice(ctx context.Context, itemID string, price decimal.Decimal) (domain.Item, error) {
	if price.IsNegative() {
		return domain.Item{}, ErrInvalidPrice
	}
	current, ok := s.store.FindCartItem(itemID)
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}

	predicted := current
	predicted.UnitPrice = price
	predicted.TotalPrice = predicted.LineTotal()

	return s.mutateItem(ctx, "cart.set_price", predicted, UpdateItemInput{
		ItemID:    itemID,
		UnitPrice: &price,
	})
}

// SetNote updates the free-text note of a line.
func (s *Service) SetNote(ctx context.Context, itemID, note string) (domain.Item, error) {
	current, ok := s.store.FindCartItem(itemID)
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}

	predicted := current
	predicted.Note = note

	return s.mutateItem(ctx, "cart.set_note", predicted, UpdateItemInput{
		ItemID: itemID,
		Note:   &note,
	})
}

// RemoveItem deletes a line. The prediction splices the line out and
// resubtracts its exact quantity and total; success keeps the prediction,
// failure re-fetches the cart.
func (s *Service) RemoveItem(ctx context.Context, itemID string) error {
	if _, ok := s.store.FindCartItem(itemID); !ok {
		return ErrItemNotFound
	}

	if err := s.store.Begin("cart.remove_item", store.AggCart); err != nil {
		return err
	}

	// predict
	removed, ok := s.store.SpliceCartItem(itemID)
	if !ok {
		s.store.End(ErrItemNotFound, store.AggCart)
		return ErrItemNotFound
	}

	// commit
	if err := s.api.RemoveItem(ctx, itemID); err != nil {
		s.rollback(ctx, "cart.remove_item", err)
		s.store.End(err, store.AggCart)
		return err
	}

	s.log.Debug("cart item removed",
		slog.String("item_id", removed.ID),
		slog.Int("quantity", removed.Quantity),
	)
	s.store.End(nil, store.AggCart)
	return nil
}

// AssignCustomer binds or replaces the cart's customer. Binding is mutable
// until checkout, so no invariant check happens here.
func (s *Service) AssignCustomer(ctx context.Context, customerID string) error {
	if err := s.store.Begin("cart.assign_customer", store.AggCart); err != nil {
		return err
	}
	err := s.BindCustomer(ctx, customerID)
	s.store.End(err, store.AggCart)
	return err
}

// BindCustomer is the unguarded assign, for pipelines that hold the cart
// guard themselves.
func (s *Service) BindCustomer(ctx context.Context, customerID string) error {
	cart, ok := s.store.Cart()
	if !ok {
		return ErrNoCart
	}
	if err := s.api.Assign(ctx, AssignInput{CartID: cart.ID, CustomerID: &customerID}); err != nil {
		return err
	}
	s.store.BindCartCustomer(customerID)
	return nil
}

// AssignExtras forwards a discount and order notes to the cart. The backend
// owns both; nothing is patched locally.
func (s *Service) AssignExtras(ctx context.Context, discount *decimal.Decimal, notes *string) error {
	cart, ok := s.store.Cart()
	if !ok {
		return ErrNoCart
	}
	return s.api.Assign(ctx, AssignInput{CartID: cart.ID, Discount: discount, Notes: notes})
}

// Clear empties the cart remotely, then locally. No optimistic prediction: a
// failed clear leaves the cart untouched.
func (s *Service) Clear(ctx context.Context) error {
	cart, ok := s.store.Cart()
	if !ok {
		return ErrNoCart
	}

	if err := s.store.Begin("cart.clear", store.AggCart); err != nil {
		return err
	}

	err := s.api.Clear(ctx, cart.ID)
	if err == nil {
		s.store.ClearCart()
	}
	s.store.End(err, store.AggCart)
	return err
}
