package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/convert/domain"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

var (
	ErrNoCart           = errors.New("no active cart")
	ErrCartEmpty        = errors.New("cart has no items")
	ErrEmptySelection   = errors.New("no cart items selected")
	ErrCustomerRequired = errors.New("a customer is required to park items on the waitlist")
	ErrItemNotInCart    = errors.New("selected item is not in the cart")
	ErrWaitlistNotFound = errors.New("waitlist item not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// Service wires the three aggregates into the directed conversions:
// cart→waitlist, waitlist→cart, order→cart, and cart→order (checkout).
// Every pipeline checks the customer-binding invariant before the first
// remote call and reconciles afterwards, never speculatively.
type Service struct {
	store    *store.Store
	cart     CartGateway
	waitlist WaitlistGateway
	orders   OrderGateway
	log      *slog.Logger
}

func NewService(st *store.Store, cart CartGateway, waitlist WaitlistGateway, orders OrderGateway, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: st, cart: cart, waitlist: waitlist, orders: orders, log: log}
}

// PromoteOutcome is the client-visible result of a bulk promotion. Partial
// failure is a result, not an error: Failed carries the per-item reasons.
type PromoteOutcome struct {
	Promoted    int
	Failed      []wldomain.ItemError
	CartCleared bool
}

// PromoteToWaitlist parks the selected cart items on the customer's waitlist.
// When the whole cart was promoted the local cart is cleared without a
// re-fetch; a partial promotion re-fetches the cart for the authoritative
// remainder instead of guessing.
func (s *Service) PromoteToWaitlist(ctx context.Context, itemIDs []string, note, customerID string) (PromoteOutcome, error) {
	cart, ok := s.cart.Snapshot()
	if !ok {
		return PromoteOutcome{}, ErrNoCart
	}
	if !cart.HasItems() {
		return PromoteOutcome{}, ErrCartEmpty
	}
	if len(itemIDs) == 0 {
		return PromoteOutcome{}, ErrEmptySelection
	}
	for _, id := range itemIDs {
		if _, found := cart.Find(id); !found {
			return PromoteOutcome{}, fmt.Errorf("%w: %s", ErrItemNotInCart, id)
		}
	}

	// Resolve the customer before anything leaves the device.
	bindCart := false
	switch {
	case cart.CustomerID != "" && customerID == "":
		customerID = cart.CustomerID
	case cart.CustomerID != "":
		if conflict := domain.CanBind(customerID, domain.BoundTo(cart.CustomerID), true); conflict != nil {
			return PromoteOutcome{}, conflict
		}
	case customerID == "":
		return PromoteOutcome{}, ErrCustomerRequired
	default:
		bindCart = true
	}

	if err := s.store.Begin("convert.promote", store.AggCart, store.AggWaitlist); err != nil {
		return PromoteOutcome{}, err
	}

	out, err := s.promote(ctx, len(cart.Items), itemIDs, note, customerID, bindCart)
	s.store.End(err, store.AggCart, store.AggWaitlist)
	return out, err
}

func (s *Service) promote(ctx context.Context, cartSize int, itemIDs []string, note, customerID string, bindCart bool) (PromoteOutcome, error) {
	if bindCart {
		if err := s.cart.Bind(ctx, customerID); err != nil {
			return PromoteOutcome{}, fmt.Errorf("bind customer before promotion: %w", err)
		}
	}

	res, err := s.waitlist.BulkAdd(ctx, itemIDs, note, customerID)
	if err != nil {
		// Whole call failed: both collections stay exactly as they were.
		return PromoteOutcome{}, err
	}

	s.waitlist.Apply(res)

	out := PromoteOutcome{Promoted: res.SuccessfulItems, Failed: res.Errors}
	switch {
	case res.SuccessfulItems > 0 && res.SuccessfulItems == cartSize:
		// The server has logically emptied the cart; no re-fetch needed.
		s.cart.ClearLocal()
		out.CartCleared = true
	case res.SuccessfulItems > 0:
		if rerr := s.cart.Reload(ctx); rerr != nil {
			s.log.Warn("cart re-fetch after partial promotion failed", slog.Any("err", rerr))
			return out, rerr
		}
	}
	return out, nil
}

// ConvertOutcome reports a waitlist→cart conversion.
type ConvertOutcome struct {
	CustomerID string
	Converted  int
}

// ConvertWaitlistItem moves one waitlist entry's customer group back into the
// cart. The backend converts per customer, so the single-item entry point
// resolves the owning customer and proceeds as a group conversion.
func (s *Service) ConvertWaitlistItem(ctx context.Context, itemID string) (ConvertOutcome, error) {
	customerID, ok := s.waitlist.CustomerOf(itemID)
	if !ok {
		return ConvertOutcome{}, ErrWaitlistNotFound
	}
	return s.ConvertWaitlistGroup(ctx, customerID)
}

// ConvertWaitlistGroup converts the whole customer group. On a binding
// conflict the error carries both customer ids and no remote call is made;
// ConvertWaitlistGroupClearingCart is the "clear cart, then retry" compound.
func (s *Service) ConvertWaitlistGroup(ctx context.Context, customerID string) (ConvertOutcome, error) {
	if cart, ok := s.cart.Snapshot(); ok {
		if conflict := domain.CanBind(customerID, domain.BoundTo(cart.CustomerID), cart.HasItems()); conflict != nil {
			return ConvertOutcome{}, conflict
		}
	}

	if err := s.store.Begin("convert.waitlist_to_cart", store.AggCart, store.AggWaitlist); err != nil {
		return ConvertOutcome{}, err
	}
	out, err := s.convertGroup(ctx, customerID)
	s.store.End(err, store.AggCart, store.AggWaitlist)
	return out, err
}

// ConvertWaitlistGroupClearingCart clears the cart remotely, then converts.
func (s *Service) ConvertWaitlistGroupClearingCart(ctx context.Context, customerID string) (ConvertOutcome, error) {
	if err := s.store.Begin("convert.clear_then_convert", store.AggCart, store.AggWaitlist); err != nil {
		return ConvertOutcome{}, err
	}

	out, err := func() (ConvertOutcome, error) {
		if err := s.cart.ClearRemote(ctx); err != nil {
			return ConvertOutcome{}, fmt.Errorf("clear cart before conversion: %w", err)
		}
		return s.convertGroup(ctx, customerID)
	}()
	s.store.End(err, store.AggCart, store.AggWaitlist)
	return out, err
}

func (s *Service) convertGroup(ctx context.Context, customerID string) (ConvertOutcome, error) {
	converted, err := s.waitlist.Convert(ctx, customerID)
	if err != nil {
		return ConvertOutcome{}, err
	}

	// The group conversion is all-or-nothing per customer: every local entry
	// of the customer goes, whether or not the response names it.
	reloadErr := s.cart.Reload(ctx)
	s.waitlist.DropGroup(customerID)

	out := ConvertOutcome{CustomerID: customerID, Converted: converted}
	if reloadErr != nil {
		s.log.Warn("cart re-fetch after conversion failed", slog.Any("err", reloadErr))
		return out, reloadErr
	}
	return out, nil
}

// ConvertOrder turns a completed order back into the active cart, retiring
// the order. Locked or terminal orders are rejected before any remote call.
func (s *Service) ConvertOrder(ctx context.Context, orderID string) error {
	order, ok := s.orders.Find(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if err := order.Convertible(); err != nil {
		return err
	}

	if err := s.store.Begin("convert.order_to_cart", store.AggCart, store.AggOrders); err != nil {
		return err
	}

	err := func() error {
		converted, err := s.orders.Convert(ctx, orderID)
		if err != nil {
			return err
		}
		if converted.ID == "" && converted.InvoiceNo == "" {
			// Defensive: an empty echo cannot be matched; fall back to the
			// id we asked for.
			converted.ID = orderID
		}
		if !s.orders.DropConverted(converted) {
			s.log.Warn("converted order not found locally",
				slog.String("invoice_no", converted.InvoiceNo),
				slog.String("order_id", converted.ID),
			)
		}
		return s.cart.Reload(ctx)
	}()
	s.store.End(err, store.AggCart, store.AggOrders)
	return err
}

// CheckoutInput carries the checkout parameters. Discount and Notes are
// optional extras assigned to the cart just before checkout.
type CheckoutInput struct {
	CustomerID    string
	PaymentMethod string
	Discount      *decimal.Decimal
	Notes         *string
}

// Checkout finalizes the cart into an order. A failed discount/notes
// assignment aborts the checkout rather than proceeding without it.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (orderdomain.Order, error) {
	cart, ok := s.cart.Snapshot()
	if !ok {
		return orderdomain.Order{}, ErrNoCart
	}
	if !cart.HasItems() {
		return orderdomain.Order{}, ErrCartEmpty
	}

	customerID := in.CustomerID
	if customerID == "" {
		customerID = cart.CustomerID
	}
	if customerID == "" {
		return orderdomain.Order{}, ErrCustomerRequired
	}

	if err := s.store.Begin("convert.checkout", store.AggCart, store.AggOrders); err != nil {
		return orderdomain.Order{}, err
	}

	order, err := func() (orderdomain.Order, error) {
		if in.Discount != nil || in.Notes != nil {
			if err := s.cart.AssignExtras(ctx, in.Discount, in.Notes); err != nil {
				return orderdomain.Order{}, fmt.Errorf("assign checkout extras: %w", err)
			}
		}
		order, err := s.cart.Checkout(ctx, customerID, in.PaymentMethod)
		if err != nil {
			return orderdomain.Order{}, err
		}
		s.orders.Insert(order)
		return order, nil
	}()
	s.store.End(err, store.AggCart, store.AggOrders)
	return order, err
}

// RefreshAll re-derives all three collections from the backend. The
// aggregates are distinct, so the fetches may run concurrently.
func (s *Service) RefreshAll(ctx context.Context, filter orderdomain.Filter) error {
	if err := s.store.Begin("refresh.all", store.AggCart, store.AggWaitlist, store.AggOrders); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.cart.Reload(ctx) })
	g.Go(func() error { return s.waitlist.Reload(ctx) })
	g.Go(func() error { return s.orders.Reload(ctx, filter) })

	err := g.Wait()
	s.store.End(err, store.AggCart, store.AggWaitlist, store.AggOrders)
	return err
}
