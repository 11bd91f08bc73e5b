package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	cartapp "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/app"
	cartdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	convertapp "github.com/JemilaBekele/mobileforsales-sub000/internal/convert/app"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
)

// CartAdapter exposes the cart context to the conversion pipelines. The
// pipeline holds the aggregate guard, so only unguarded service methods and
// raw API calls appear here.
type CartAdapter struct {
	svc   *cartapp.Service
	api   cartapp.API
	store *store.Store
}

func NewCartAdapter(svc *cartapp.Service, api cartapp.API, st *store.Store) *CartAdapter {
	return &CartAdapter{svc: svc, api: api, store: st}
}

var _ convertapp.CartGateway = (*CartAdapter)(nil)

func (a *CartAdapter) Snapshot() (*cartdomain.Cart, bool) {
	return a.store.Cart()
}

func (a *CartAdapter) Reload(ctx context.Context) error {
	return a.svc.Reload(ctx)
}

func (a *CartAdapter) Bind(ctx context.Context, customerID string) error {
	return a.svc.BindCustomer(ctx, customerID)
}

func (a *CartAdapter) AssignExtras(ctx context.Context, discount *decimal.Decimal, notes *string) error {
	return a.svc.AssignExtras(ctx, discount, notes)
}

func (a *CartAdapter) ClearLocal() {
	a.store.ClearCart()
}

func (a *CartAdapter) ClearRemote(ctx context.Context) error {
	cart, ok := a.store.Cart()
	if !ok {
		return cartapp.ErrNoCart
	}
	if err := a.api.Clear(ctx, cart.ID); err != nil {
		return err
	}
	a.store.ClearCart()
	return nil
}

func (a *CartAdapter) Checkout(ctx context.Context, customerID, paymentMethod string) (orderdomain.Order, error) {
	cart, ok := a.store.Cart()
	if !ok {
		return orderdomain.Order{}, cartapp.ErrNoCart
	}

	res, err := a.api.Checkout(ctx, cartapp.CheckoutInput{
		CartID:        cart.ID,
		CustomerID:    customerID,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return orderdomain.Order{}, err
	}

	if res.Cart != nil {
		a.store.SetCart(res.Cart)
	} else {
		a.store.ClearCart()
	}
	return res.Order, nil
}
