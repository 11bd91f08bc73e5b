package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
)

// API is the cart surface of the storefront backend.
type API interface {
	// FetchActive returns the user's active cart, or nil when none exists yet.
	FetchActive(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, in AddItemInput) (domain.Item, error)
	// UpdateItem carries the intended new state of the line, not a delta.
	UpdateItem(ctx context.Context, in UpdateItemInput) (domain.Item, error)
	RemoveItem(ctx context.Context, itemID string) error
	Assign(ctx context.Context, in AssignInput) error
	Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	Clear(ctx context.Context, cartID string) error
}

type AddItemInput struct {
	CartID    string
	ProductID string
	ShopID    string
	Quantity  int
	UnitPrice decimal.Decimal
	Note      string
}

type UpdateItemInput struct {
	ItemID    string
	Quantity  *int
	UnitPrice *decimal.Decimal
	Note      *string
}

type AssignInput struct {
	CartID     string
	CustomerID *string
	Discount   *decimal.Decimal
	Notes      *string
}

type CheckoutInput struct {
	CartID        string
	CustomerID    string
	PaymentMethod string
}

type CheckoutResult struct {
	Cart  *domain.Cart
	Order orderdomain.Order
}
