package adapter

import (
	"context"

	convertapp "github.com/JemilaBekele/mobileforsales-sub000/internal/convert/app"
	orderapp "github.com/JemilaBekele/mobileforsales-sub000/internal/order/app"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
)

type OrderAdapter struct {
	svc   *orderapp.Service
	api   orderapp.API
	store *store.Store
}

func NewOrderAdapter(svc *orderapp.Service, api orderapp.API, st *store.Store) *OrderAdapter {
	return &OrderAdapter{svc: svc, api: api, store: st}
}

var _ convertapp.OrderGateway = (*OrderAdapter)(nil)

func (a *OrderAdapter) Find(orderID string) (orderdomain.Order, bool) {
	return a.store.FindOrder(orderID)
}

func (a *OrderAdapter) Convert(ctx context.Context, orderID string) (orderdomain.ConvertedOrder, error) {
	return a.api.Convert(ctx, orderID)
}

func (a *OrderAdapter) DropConverted(converted orderdomain.ConvertedOrder) bool {
	return a.store.DropConvertedOrder(converted)
}

func (a *OrderAdapter) Insert(order orderdomain.Order) {
	a.store.PrependOrder(order)
}

func (a *OrderAdapter) Reload(ctx context.Context, filter orderdomain.Filter) error {
	return a.svc.Reload(ctx, filter)
}
