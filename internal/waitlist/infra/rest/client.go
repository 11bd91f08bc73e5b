package rest

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/app"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/rest"
)

type Client struct {
	c *rest.Client
}

func NewClient(c *rest.Client) *Client {
	return &Client{c: c}
}

var _ app.API = (*Client)(nil)

type itemDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	CartID     string `json:"cartId"`
	CartItemID string `json:"cartItemId"`
	Note       string `json:"note"`
	Snapshot   struct {
		ProductID string          `json:"productId"`
		ShopID    string          `json:"shopId"`
		Quantity  int             `json:"quantity"`
		UnitPrice decimal.Decimal `json:"unitPrice"`
	} `json:"snapshot"`
}

func (d itemDTO) domain() domain.Item {
	return domain.Item{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		CartID:     d.CartID,
		CartItemID: d.CartItemID,
		Note:       d.Note,
		Snapshot: domain.Snapshot{
			ProductID: d.Snapshot.ProductID,
			ShopID:    d.Snapshot.ShopID,
			Quantity:  d.Snapshot.Quantity,
			UnitPrice: d.Snapshot.UnitPrice,
		},
	}
}

func (cl *Client) Fetch(ctx context.Context) (app.FetchResult, error) {
	var resp struct {
		Count     int       `json:"count"`
		Waitlists []itemDTO `json:"waitlists"`
	}
	if err := cl.c.Get(ctx, "/api/v1/waitlists", nil, &resp); err != nil {
		return app.FetchResult{}, err
	}

	items := make([]domain.Item, 0, len(resp.Waitlists))
	for _, d := range resp.Waitlists {
		items = append(items, d.domain())
	}
	return app.FetchResult{Items: items, Count: resp.Count}, nil
}

func (cl *Client) BulkAdd(ctx context.Context, in app.BulkAddInput) (domain.BulkResult, error) {
	body := struct {
		CartItemIDs []string `json:"cartItemIds"`
		Note        string   `json:"note,omitempty"`
		CustomerID  string   `json:"customerId"`
	}{in.CartItemIDs, in.Note, in.CustomerID}

	var resp struct {
		TotalItems      int       `json:"totalItems"`
		SuccessfulItems int       `json:"successfulItems"`
		FailedItems     int       `json:"failedItems"`
		WaitlistItems   []itemDTO `json:"waitlistItems"`
		Errors          []struct {
			ItemID string `json:"itemId"`
			Label  string `json:"label"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	if err := cl.c.Post(ctx, "/api/v1/waitlists/bulk", body, &resp); err != nil {
		return domain.BulkResult{}, err
	}

	res := domain.BulkResult{
		TotalItems:      resp.TotalItems,
		SuccessfulItems: resp.SuccessfulItems,
		FailedItems:     resp.FailedItems,
	}
	for _, d := range resp.WaitlistItems {
		res.Items = append(res.Items, d.domain())
	}
	for _, e := range resp.Errors {
		res.Errors = append(res.Errors, domain.ItemError{ItemID: e.ItemID, Label: e.Label, Reason: e.Reason})
	}
	return res, nil
}

func (cl *Client) Remove(ctx context.Context, itemID string) error {
	return cl.c.Delete(ctx, "/api/v1/waitlists/"+itemID, nil)
}

func (cl *Client) ClearForCart(ctx context.Context, cartID string) error {
	return cl.c.Delete(ctx, "/api/v1/waitlists/cart/"+cartID, nil)
}

func (cl *Client) ConvertToCart(ctx context.Context, customerID string) (app.ConvertResult, error) {
	var resp struct {
		Cart *struct {
			ID string `json:"id"`
		} `json:"cart"`
		CartItems           []struct{} `json:"cartItems"`
		TotalItemsConverted int        `json:"totalItemsConverted"`
	}
	body := struct {
		CustomerID string `json:"customerId"`
	}{customerID}
	if err := cl.c.Post(ctx, "/api/v1/waitlists/convert-to-cart", body, &resp); err != nil {
		return app.ConvertResult{}, err
	}

	out := app.ConvertResult{ItemsConverted: resp.TotalItemsConverted}
	if out.ItemsConverted == 0 {
		out.ItemsConverted = len(resp.CartItems)
	}
	if resp.Cart != nil {
		out.CartID = resp.Cart.ID
	}
	return out, nil
}
