package app

import (
	"context"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

// API is the waitlist surface of the storefront backend.
type API interface {
	// Fetch returns every waitlist entry of the current user.
	Fetch(ctx context.Context) (FetchResult, error)
	// BulkAdd promotes cart items into a customer's waitlist, item by item.
	BulkAdd(ctx context.Context, in BulkAddInput) (domain.BulkResult, error)
	Remove(ctx context.Context, itemID string) error
	ClearForCart(ctx context.Context, cartID string) error
	// ConvertToCart moves a whole customer group back into the active cart,
	// server-side and all-or-nothing per customer.
	ConvertToCart(ctx context.Context, customerID string) (ConvertResult, error)
}

type FetchResult struct {
	Items []domain.Item
	Count int
}

type BulkAddInput struct {
	CartItemIDs []string
	Note        string
	CustomerID  string
}

type ConvertResult struct {
	CartID         string
	ItemsConverted int
}
