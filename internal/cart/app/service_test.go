package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
)

type fakeAPI struct {
	server *domain.Cart // authoritative remote cart

	failUpdate bool
	failRemove bool

	updateCalls int
	removeCalls int
	fetchCalls  int
}

func (f *fakeAPI) FetchActive(ctx context.Context) (*domain.Cart, error) {
	f.fetchCalls++
	return f.server.Clone(), nil
}

func (f *fakeAPI) AddItem(ctx context.Context, in AddItemInput) (domain.Item, error) {
	it := domain.Item{
		ID:        "srv-" + in.ProductID,
		CartID:    "c1",
		ProductID: in.ProductID,
		ShopID:    in.ShopID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Note:      in.Note,
	}
	it.TotalPrice = it.LineTotal()
	f.server.Append(it)
	return it, nil
}

func (f *fakeAPI) UpdateItem(ctx context.Context, in UpdateItemInput) (domain.Item, error) {
	f.updateCalls++
	if f.failUpdate {
		return domain.Item{}, errors.New("server rejected update")
	}
	it, ok := f.server.Find(in.ItemID)
	if !ok {
		return domain.Item{}, errors.New("not found")
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		it.UnitPrice = *in.UnitPrice
	}
	if in.Note != nil {
		it.Note = *in.Note
	}
	it.TotalPrice = it.LineTotal()
	f.server.Replace(it)
	return it, nil
}

func (f *fakeAPI) RemoveItem(ctx context.Context, itemID string) error {
	f.removeCalls++
	if f.failRemove {
		return errors.New("server rejected remove")
	}
	f.server.Splice(itemID)
	return nil
}

func (f *fakeAPI) Assign(ctx context.Context, in AssignInput) error {
	if in.CustomerID != nil {
		f.server.CustomerID = *in.CustomerID
	}
	return nil
}

func (f *fakeAPI) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	return CheckoutResult{}, errors.New("not used in cart tests")
}

func (f *fakeAPI) Clear(ctx context.Context, cartID string) error {
	f.server.Clear()
	return nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newFixture(t *testing.T) (*Service, *fakeAPI, *store.Store) {
	t.Helper()
	server := &domain.Cart{ID: "c1", UserID: "u1"}
	for _, seed := range []struct {
		id   string
		qty  int
		unit string
	}{{"i1", 2, "10.00"}, {"i2", 1, "4.50"}} {
		it := domain.Item{ID: seed.id, CartID: "c1", ProductID: "p-" + seed.id, ShopID: "s1", Quantity: seed.qty, UnitPrice: dec(seed.unit)}
		it.TotalPrice = it.LineTotal()
		server.Append(it)
	}

	api := &fakeAPI{server: server}
	st := store.New()
	svc := NewService(api, st, nil)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}
	return svc, api, st
}

func assertFold(t *testing.T, st *store.Store) {
	t.Helper()
	cart, ok := st.Cart()
	if !ok {
		t.Fatal("no cart in store")
	}
	items := 0
	amount := decimal.Zero
	for _, it := range cart.Items {
		items += it.Quantity
		amount = amount.Add(it.TotalPrice)
	}
	if cart.TotalItems != items || !cart.TotalAmount.Equal(amount) {
		t.Fatalf("aggregates drifted: totals=(%d,%s) fold=(%d,%s)",
			cart.TotalItems, cart.TotalAmount, items, amount)
	}
}

func TestOptimisticUpdateKeepsAggregatesConsistent(t *testing.T) {
	svc, _, st := newFixture(t)
	ctx := context.Background()

	t.Run("quantity edit", func(t *testing.T) {
		it, err := svc.SetQuantity(ctx, "i1", 5)
		if err != nil {
			t.Fatal(err)
		}
		if it.Quantity != 5 || !it.TotalPrice.Equal(dec("50.00")) {
			t.Fatalf("confirmed item: %+v", it)
		}
		assertFold(t, st)
	})

	t.Run("price override", func(t *testing.T) {
		it, err := svc.SetUnitPrice(ctx, "i2", dec("6.00"))
		if err != nil {
			t.Fatal(err)
		}
		if !it.TotalPrice.Equal(dec("6.00")) {
			t.Fatalf("confirmed item: %+v", it)
		}
		assertFold(t, st)
	})

	t.Run("removal", func(t *testing.T) {
		if err := svc.RemoveItem(ctx, "i1"); err != nil {
			t.Fatal(err)
		}
		assertFold(t, st)
	})
}

func TestFailedUpdateRollsBackViaRefetch(t *testing.T) {
	svc, api, st := newFixture(t)
	ctx := context.Background()

	api.failUpdate = true
	fetchesBefore := api.fetchCalls

	if _, err := svc.SetQuantity(ctx, "i1", 7); err == nil {
		t.Fatal("expected error")
	}

	if api.fetchCalls != fetchesBefore+1 {
		t.Fatalf("rollback must re-fetch the cart, fetches=%d", api.fetchCalls)
	}
	cart, _ := st.Cart()
	it, _ := cart.Find("i1")
	if it.Quantity != 2 {
		t.Fatalf("prediction survived rollback: qty=%d", it.Quantity)
	}
	assertFold(t, st)

	f := st.FlagsOf(store.AggCart)
	if f.Err == nil {
		t.Fatal("error not recorded on the aggregate")
	}
}

func TestFailedRemoveRestoresItem(t *testing.T) {
	svc, api, st := newFixture(t)
	ctx := context.Background()

	api.failRemove = true
	if err := svc.RemoveItem(ctx, "i2"); err == nil {
		t.Fatal("expected error")
	}

	cart, _ := st.Cart()
	if _, ok := cart.Find("i2"); !ok {
		t.Fatal("removed item not restored by re-fetch")
	}
	assertFold(t, st)
}

func TestQuantityFloor(t *testing.T) {
	svc, api, st := newFixture(t)
	ctx := context.Background()

	t.Run("decrement at 1 is a no-op without a remote call", func(t *testing.T) {
		before := api.updateCalls
		it, err := svc.Decrement(ctx, "i2") // seeded at quantity 1
		if err != nil {
			t.Fatal(err)
		}
		if it.Quantity != 1 {
			t.Fatalf("quantity changed: %d", it.Quantity)
		}
		if api.updateCalls != before {
			t.Fatal("remote call issued for a floored decrement")
		}
		assertFold(t, st)
	})

	t.Run("decrement at 2 lands on 1", func(t *testing.T) {
		cartBefore, _ := st.Cart()
		it, err := svc.Decrement(ctx, "i1") // seeded at quantity 2
		if err != nil {
			t.Fatal(err)
		}
		if it.Quantity != 1 {
			t.Fatalf("quantity=%d, want 1", it.Quantity)
		}
		cartAfter, _ := st.Cart()
		drop := cartBefore.TotalAmount.Sub(cartAfter.TotalAmount)
		if !drop.Equal(dec("10.00")) {
			t.Fatalf("aggregate moved by %s, want one unit price 10.00", drop)
		}
		assertFold(t, st)
	})
}

func TestAddItemValidation(t *testing.T) {
	svc, api, _ := newFixture(t)
	ctx := context.Background()

	fetches := api.fetchCalls
	if _, err := svc.AddItem(ctx, AddItemInput{ProductID: "p9", Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("err=%v", err)
	}
	if api.fetchCalls != fetches {
		t.Fatal("validation failure must not reach the backend")
	}
}

func TestSecondMutationWhileInFlightIsRejected(t *testing.T) {
	svc, _, st := newFixture(t)

	if err := st.Begin("cart.other_op", store.AggCart); err != nil {
		t.Fatal(err)
	}
	defer st.End(nil, store.AggCart)

	if _, err := svc.SetQuantity(context.Background(), "i1", 3); !errors.Is(err, store.ErrBusy) {
		t.Fatalf("err=%v, want ErrBusy", err)
	}
}
