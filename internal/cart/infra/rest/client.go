package rest

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/cart/app"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	orderrest "github.com/JemilaBekele/mobileforsales-sub000/internal/order/infra/rest"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/rest"
)

type Client struct {
	c *rest.Client
}

func NewClient(c *rest.Client) *Client {
	return &Client{c: c}
}

var _ app.API = (*Client)(nil)

func (cl *Client) FetchActive(ctx context.Context) (*domain.Cart, error) {
	var resp struct {
		Cart *CartDTO `json:"cart"`
	}
	if err := cl.c.Get(ctx, "/api/v1/cart", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Cart == nil {
		return nil, nil
	}
	return resp.Cart.Domain(), nil
}

func (cl *Client) AddItem(ctx context.Context, in app.AddItemInput) (domain.Item, error) {
	body := struct {
		CartID    string          `json:"cartId,omitempty"`
		ProductID string          `json:"productId"`
		ShopID    string          `json:"shopId"`
		Quantity  int             `json:"quantity"`
		UnitPrice decimal.Decimal `json:"unitPrice"`
		Note      string          `json:"note,omitempty"`
	}{in.CartID, in.ProductID, in.ShopID, in.Quantity, in.UnitPrice, in.Note}

	var resp struct {
		CartItem CartItemDTO `json:"cartItem"`
	}
	if err := cl.c.Post(ctx, "/api/v1/cart/items", body, &resp); err != nil {
		return domain.Item{}, err
	}
	return resp.CartItem.Domain(), nil
}

func (cl *Client) UpdateItem(ctx context.Context, in app.UpdateItemInput) (domain.Item, error) {
	body := struct {
		Quantity  *int             `json:"quantity,omitempty"`
		UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
		Note      *string          `json:"note,omitempty"`
	}{in.Quantity, in.UnitPrice, in.Note}

	var resp struct {
		CartItem CartItemDTO `json:"cartItem"`
	}
	if err := cl.c.Patch(ctx, "/api/v1/cart/items/"+in.ItemID, body, &resp); err != nil {
		return domain.Item{}, err
	}
	return resp.CartItem.Domain(), nil
}

func (cl *Client) RemoveItem(ctx context.Context, itemID string) error {
	return cl.c.Delete(ctx, "/api/v1/cart/items/"+itemID, nil)
}

func (cl *Client) Assign(ctx context.Context, in app.AssignInput) error {
	body := struct {
		CustomerID *string          `json:"customerId,omitempty"`
		Discount   *decimal.Decimal `json:"discount,omitempty"`
		Notes      *string          `json:"notes,omitempty"`
	}{in.CustomerID, in.Discount, in.Notes}
	return cl.c.Patch(ctx, "/api/v1/cart/"+in.CartID, body, nil)
}

func (cl *Client) Checkout(ctx context.Context, in app.CheckoutInput) (app.CheckoutResult, error) {
	body := struct {
		CustomerID    string `json:"customerId"`
		PaymentMethod string `json:"paymentMethod"`
	}{in.CustomerID, in.PaymentMethod}

	var resp struct {
		Cart  *CartDTO          `json:"cart"`
		Order orderrest.OrderDTO `json:"order"`
	}
	if err := cl.c.Post(ctx, "/api/v1/cart/"+in.CartID+"/checkout", body, &resp); err != nil {
		return app.CheckoutResult{}, err
	}

	out := app.CheckoutResult{Order: resp.Order.Domain()}
	if resp.Cart != nil {
		out.Cart = resp.Cart.Domain()
	}
	return out, nil
}

func (cl *Client) Clear(ctx context.Context, cartID string) error {
	return cl.c.Delete(ctx, "/api/v1/cart/"+cartID+"/items", nil)
}
