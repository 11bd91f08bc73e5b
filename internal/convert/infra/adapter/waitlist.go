package adapter

import (
	"context"

	convertapp "github.com/JemilaBekele/mobileforsales-sub000/internal/convert/app"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
	wlapp "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/app"
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

type WaitlistAdapter struct {
	svc   *wlapp.Service
	api   wlapp.API
	store *store.Store
}

func NewWaitlistAdapter(svc *wlapp.Service, api wlapp.API, st *store.Store) *WaitlistAdapter {
	return &WaitlistAdapter{svc: svc, api: api, store: st}
}

var _ convertapp.WaitlistGateway = (*WaitlistAdapter)(nil)

func (a *WaitlistAdapter) BulkAdd(ctx context.Context, itemIDs []string, note, customerID string) (wldomain.BulkResult, error) {
	return a.api.BulkAdd(ctx, wlapp.BulkAddInput{
		CartItemIDs: itemIDs,
		Note:        note,
		CustomerID:  customerID,
	})
}

func (a *WaitlistAdapter) Apply(res wldomain.BulkResult) {
	a.store.ReconcileWaitlist(res)
}

func (a *WaitlistAdapter) CustomerOf(itemID string) (string, bool) {
	return a.store.WaitlistCustomer(itemID)
}

func (a *WaitlistAdapter) Reload(ctx context.Context) error {
	return a.svc.Reload(ctx)
}

func (a *WaitlistAdapter) Convert(ctx context.Context, customerID string) (int, error) {
	res, err := a.api.ConvertToCart(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return res.ItemsConverted, nil
}

func (a *WaitlistAdapter) DropGroup(customerID string) {
	a.store.DropWaitlistByCustomer(customerID)
}
