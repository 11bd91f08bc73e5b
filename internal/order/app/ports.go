package app

import (
	"context"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
)

// API is the sell surface of the storefront backend.
type API interface {
	Fetch(ctx context.Context, filter domain.Filter) (FetchResult, error)
	// Convert turns an order back into the active cart and echoes which order
	// was consumed.
	Convert(ctx context.Context, orderID string) (domain.ConvertedOrder, error)
}

type FetchResult struct {
	Orders []domain.Order
	Count  int
}
