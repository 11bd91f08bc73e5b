package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	cartdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

// world is the fake backend shared by the gateway fakes. Remote state lives
// here; the pipelines' local state lives in the real store, exactly as with
// the production adapters.
type world struct {
	serverCart     *cartdomain.Cart
	serverWaitlist []wldomain.Item
	serverOrders   []orderdomain.Order

	failBind    bool
	failBulk    bool
	failConvert bool
	failExtras  bool
	bulkFailIDs map[string]string // cart item id -> reason

	bindCalls         int
	bulkCalls         int
	convertCalls      int
	orderConvertCalls int
	clearCalls        int
	cartReloads       int
	extrasCalls       int
	checkoutCalls     int

	nextID int
}

func newWorld() *world {
	return &world{
		serverCart:  &cartdomain.Cart{ID: "c1", UserID: "u1"},
		bulkFailIDs: map[string]string{},
	}
}

func (w *world) id(prefix string) string {
	w.nextID++
	return fmt.Sprintf("%s-%d", prefix, w.nextID)
}

func (w *world) seedCartItem(id string, qty int, unit string, product string) {
	price, err := decimal.NewFromString(unit)
	if err != nil {
		panic(err)
	}
	it := cartdomain.Item{ID: id, CartID: w.serverCart.ID, ProductID: product, ShopID: "shop-1", Quantity: qty, UnitPrice: price}
	it.TotalPrice = it.LineTotal()
	w.serverCart.Append(it)
}

// wlEntry fabricates a server-side waitlist item outside the promotion path.
func wlEntry(w *world, customerID, product string, qty int, unit string) wldomain.Item {
	price, err := decimal.NewFromString(unit)
	if err != nil {
		panic(err)
	}
	return wldomain.Item{
		ID:         w.id("wl"),
		CustomerID: customerID,
		Snapshot: wldomain.Snapshot{
			ProductID: product,
			ShopID:    "shop-1",
			Quantity:  qty,
			UnitPrice: price,
		},
	}
}

type fakeCartGW struct {
	w  *world
	st *store.Store
}

func (f *fakeCartGW) Snapshot() (*cartdomain.Cart, bool) { return f.st.Cart() }

func (f *fakeCartGW) Reload(ctx context.Context) error {
	f.w.cartReloads++
	f.st.SetCart(f.w.serverCart.Clone())
	return nil
}

func (f *fakeCartGW) Bind(ctx context.Context, customerID string) error {
	f.w.bindCalls++
	if f.w.failBind {
		return errors.New("bind failed")
	}
	f.w.serverCart.CustomerID = customerID
	f.st.BindCartCustomer(customerID)
	return nil
}

func (f *fakeCartGW) AssignExtras(ctx context.Context, discount *decimal.Decimal, notes *string) error {
	f.w.extrasCalls++
	if f.w.failExtras {
		return errors.New("extras rejected")
	}
	return nil
}

func (f *fakeCartGW) ClearLocal() { f.st.ClearCart() }

func (f *fakeCartGW) ClearRemote(ctx context.Context) error {
	f.w.clearCalls++
	f.w.serverCart.Clear()
	f.st.ClearCart()
	return nil
}

func (f *fakeCartGW) Checkout(ctx context.Context, customerID, paymentMethod string) (orderdomain.Order, error) {
	f.w.checkoutCalls++
	order := orderdomain.Order{
		ID:         f.w.id("o"),
		InvoiceNo:  f.w.id("INV"),
		Status:     orderdomain.StatusNotApproved,
		CustomerID: customerID,
		GrandTotal: f.w.serverCart.TotalAmount,
	}
	f.w.serverCart.Clear()
	f.st.SetCart(f.w.serverCart.Clone())
	return order, nil
}

type fakeWaitlistGW struct {
	w  *world
	st *store.Store
}

func (f *fakeWaitlistGW) BulkAdd(ctx context.Context, itemIDs []string, note, customerID string) (wldomain.BulkResult, error) {
	f.w.bulkCalls++
	if f.w.failBulk {
		return wldomain.BulkResult{}, errors.New("bulk call failed")
	}

	res := wldomain.BulkResult{TotalItems: len(itemIDs)}
	for _, id := range itemIDs {
		if reason, bad := f.w.bulkFailIDs[id]; bad {
			res.FailedItems++
			res.Errors = append(res.Errors, wldomain.ItemError{ItemID: id, Label: "cart item " + id, Reason: reason})
			continue
		}
		src, ok := f.w.serverCart.Find(id)
		if !ok {
			res.FailedItems++
			res.Errors = append(res.Errors, wldomain.ItemError{ItemID: id, Reason: "not in cart"})
			continue
		}
		entry := wldomain.Item{
			ID:         f.w.id("wl"),
			CustomerID: customerID,
			CartID:     src.CartID,
			CartItemID: src.ID,
			Note:       note,
			Snapshot: wldomain.Snapshot{
				ProductID: src.ProductID,
				ShopID:    src.ShopID,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
			},
		}
		f.w.serverCart.Splice(src.ID)
		f.w.serverWaitlist = append([]wldomain.Item{entry}, f.w.serverWaitlist...)
		res.SuccessfulItems++
		res.Items = append(res.Items, entry)
	}
	return res, nil
}

func (f *fakeWaitlistGW) Apply(res wldomain.BulkResult) { f.st.ReconcileWaitlist(res) }

func (f *fakeWaitlistGW) CustomerOf(itemID string) (string, bool) {
	return f.st.WaitlistCustomer(itemID)
}

func (f *fakeWaitlistGW) Reload(ctx context.Context) error {
	f.st.ReplaceWaitlist(append([]wldomain.Item(nil), f.w.serverWaitlist...))
	return nil
}

func (f *fakeWaitlistGW) Convert(ctx context.Context, customerID string) (int, error) {
	f.w.convertCalls++
	if f.w.failConvert {
		return 0, errors.New("convert call failed")
	}

	converted := 0
	kept := f.w.serverWaitlist[:0:0]
	for _, entry := range f.w.serverWaitlist {
		if entry.CustomerID != customerID {
			kept = append(kept, entry)
			continue
		}
		it := cartdomain.Item{
			ID:        f.w.id("ci"),
			CartID:    f.w.serverCart.ID,
			ProductID: entry.Snapshot.ProductID,
			ShopID:    entry.Snapshot.ShopID,
			Quantity:  entry.Snapshot.Quantity,
			UnitPrice: entry.Snapshot.UnitPrice,
			Note:      entry.Note,
		}
		it.TotalPrice = it.LineTotal()
		f.w.serverCart.Append(it)
		converted++
	}
	f.w.serverWaitlist = kept
	if converted > 0 {
		f.w.serverCart.CustomerID = customerID
	}
	return converted, nil
}

func (f *fakeWaitlistGW) DropGroup(customerID string) { f.st.DropWaitlistByCustomer(customerID) }

type fakeOrderGW struct {
	w  *world
	st *store.Store
}

func (f *fakeOrderGW) Find(orderID string) (orderdomain.Order, bool) { return f.st.FindOrder(orderID) }

func (f *fakeOrderGW) Convert(ctx context.Context, orderID string) (orderdomain.ConvertedOrder, error) {
	f.w.orderConvertCalls++
	for idx, o := range f.w.serverOrders {
		if o.ID != orderID {
			continue
		}
		for _, sell := range o.Items {
			it := cartdomain.Item{
				ID:        f.w.id("ci"),
				CartID:    f.w.serverCart.ID,
				ProductID: sell.ProductID,
				ShopID:    sell.ShopID,
				Quantity:  sell.Quantity,
				UnitPrice: sell.UnitPrice,
			}
			it.TotalPrice = it.LineTotal()
			f.w.serverCart.Append(it)
		}
		f.w.serverCart.CustomerID = o.CustomerID
		f.w.serverOrders = append(f.w.serverOrders[:idx:idx], f.w.serverOrders[idx+1:]...)
		// The backend echoes only the invoice number, not the id it was
		// asked for.
		return orderdomain.ConvertedOrder{
			InvoiceNo:     o.InvoiceNo,
			SaleStatus:    o.Status,
			GrandTotal:    o.GrandTotal,
			TotalProducts: o.TotalProducts,
		}, nil
	}
	return orderdomain.ConvertedOrder{}, errors.New("order not found on server")
}

func (f *fakeOrderGW) DropConverted(converted orderdomain.ConvertedOrder) bool {
	return f.st.DropConvertedOrder(converted)
}

func (f *fakeOrderGW) Insert(order orderdomain.Order) { f.st.PrependOrder(order) }

func (f *fakeOrderGW) Reload(ctx context.Context, filter orderdomain.Filter) error {
	f.st.ReplaceOrders(append([]orderdomain.Order(nil), f.w.serverOrders...), len(f.w.serverOrders))
	return nil
}
