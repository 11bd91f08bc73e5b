package app

import (
	"context"

	"github.com/shopspring/decimal"

	cartdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

// The pipelines see the three contexts only through these gateways; the
// adapters under infra/adapter wrap the real services and clients. None of
// the gateway methods take the aggregate guard; the pipeline holds it.

type CartGateway interface {
	Snapshot() (*cartdomain.Cart, bool)
	Reload(ctx context.Context) error
	Bind(ctx context.Context, customerID string) error
	AssignExtras(ctx context.Context, discount *decimal.Decimal, notes *string) error
	ClearLocal()
	ClearRemote(ctx context.Context) error
	Checkout(ctx context.Context, customerID, paymentMethod string) (orderdomain.Order, error)
}

type WaitlistGateway interface {
	BulkAdd(ctx context.Context, itemIDs []string, note, customerID string) (wldomain.BulkResult, error)
	Apply(res wldomain.BulkResult)
	CustomerOf(itemID string) (string, bool)
	Reload(ctx context.Context) error
	Convert(ctx context.Context, customerID string) (int, error)
	DropGroup(customerID string)
}

type OrderGateway interface {
	Find(orderID string) (orderdomain.Order, bool)
	Convert(ctx context.Context, orderID string) (orderdomain.ConvertedOrder, error)
	DropConverted(converted orderdomain.ConvertedOrder) bool
	Insert(order orderdomain.Order)
	Reload(ctx context.Context, filter orderdomain.Filter) error
}
