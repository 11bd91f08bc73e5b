package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

func TestBeginRejectsSecondMutationOnSameAggregate(t *testing.T) {
	s := New()

	require.NoError(t, s.Begin("cart.update_item", AggCart))
	assert.ErrorIs(t, s.Begin("cart.remove_item", AggCart), ErrBusy)

	// Different aggregate is fine while the cart is busy.
	require.NoError(t, s.Begin("orders.fetch", AggOrders))

	s.End(nil, AggCart)
	require.NoError(t, s.Begin("cart.remove_item", AggCart))
}

func TestBeginManyIsAllOrNothing(t *testing.T) {
	s := New()
	require.NoError(t, s.Begin("waitlist.remove", AggWaitlist))

	err := s.Begin("cart.promote", AggCart, AggWaitlist)
	assert.ErrorIs(t, err, ErrBusy)

	// The cart must not have been claimed by the failed Begin.
	require.NoError(t, s.Begin("cart.update_item", AggCart))
}

func TestEndRecordsOutcome(t *testing.T) {
	s := New()
	require.NoError(t, s.Begin("cart.update_item", AggCart))

	boom := errors.New("boom")
	s.End(boom, AggCart)

	f := s.FlagsOf(AggCart)
	assert.False(t, f.Loading)
	assert.Equal(t, "cart.update_item", f.LastAction)
	assert.ErrorIs(t, f.Err, boom)
}

func TestCartReadsAreCopies(t *testing.T) {
	s := New()
	c := &cartdomain.Cart{ID: "c1", CustomerID: "cust-1"}
	c.Append(cartdomain.Item{ID: "i1", Quantity: 2})
	s.SetCart(c)

	got, ok := s.Cart()
	require.True(t, ok)
	got.Items[0].Quantity = 99
	got.Clear()

	again, _ := s.Cart()
	assert.Equal(t, 2, again.Items[0].Quantity)
	assert.Equal(t, "cust-1", again.CustomerID)
}

func TestWaitlistCountTracksCollection(t *testing.T) {
	s := New()
	s.ReplaceWaitlist([]wldomain.Item{
		{ID: "w1", CustomerID: "c1"},
		{ID: "w2", CustomerID: "c2"},
	})
	require.Equal(t, 2, s.WaitlistCount())

	s.ReconcileWaitlist(wldomain.BulkResult{
		SuccessfulItems: 2,
		Items:           []wldomain.Item{{ID: "w3", CustomerID: "c1"}, {ID: "w4", CustomerID: "c1"}},
	})
	assert.Equal(t, 4, s.WaitlistCount())

	s.DropWaitlistByCustomer("c1")
	assert.Equal(t, 1, s.WaitlistCount())
	assert.Equal(t, "w2", s.Waitlist()[0].ID)
}

func TestDropConvertedOrderClampsCount(t *testing.T) {
	s := New()
	s.ReplaceOrders([]orderdomain.Order{{ID: "o1", InvoiceNo: "INV-1"}}, 1)

	cut := s.DropConvertedOrder(orderdomain.ConvertedOrder{InvoiceNo: "INV-1"})
	require.True(t, cut)
	assert.Equal(t, 0, s.OrderCount())

	cut = s.DropConvertedOrder(orderdomain.ConvertedOrder{InvoiceNo: "INV-1"})
	assert.False(t, cut)
	assert.Equal(t, 0, s.OrderCount())
}
