package rest

import (
	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
)

type CartDTO struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	CustomerID  string          `json:"customerId"`
	Items       []CartItemDTO   `json:"cartItems"`
	TotalItems  int             `json:"totalItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CheckedOut  bool            `json:"isCheckedOut"`
}

type CartItemDTO struct {
	ID         string          `json:"id"`
	CartID     string          `json:"cartId"`
	ShopID     string          `json:"shopId"`
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Note       string          `json:"note"`
}

func (d CartDTO) Domain() *domain.Cart {
	cart := &domain.Cart{
		ID:          d.ID,
		UserID:      d.UserID,
		CustomerID:  d.CustomerID,
		TotalItems:  d.TotalItems,
		TotalAmount: d.TotalAmount,
		CheckedOut:  d.CheckedOut,
	}
	for _, it := range d.Items {
		cart.Items = append(cart.Items, it.Domain())
	}
	// Trust the fold, not the echoed counters, so the invariant holds from
	// the first fetch on.
	cart.Recompute()
	return cart
}

func (d CartItemDTO) Domain() domain.Item {
	return domain.Item{
		ID:         d.ID,
		CartID:     d.CartID,
		ShopID:     d.ShopID,
		ProductID:  d.ProductID,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
		TotalPrice: d.TotalPrice,
		Note:       d.Note,
	}
}
