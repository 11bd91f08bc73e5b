package rest

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/order/app"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/rest"
)

type Client struct {
	c *rest.Client
}

func NewClient(c *rest.Client) *Client {
	return &Client{c: c}
}

var _ app.API = (*Client)(nil)

func (cl *Client) Fetch(ctx context.Context, filter domain.Filter) (app.FetchResult, error) {
	query := url.Values{}
	if filter.From != nil {
		query.Set("startDate", filter.From.Format(time.DateOnly))
	}
	if filter.To != nil {
		query.Set("endDate", filter.To.Format(time.DateOnly))
	}
	if filter.CustomerName != "" {
		query.Set("customer", filter.CustomerName)
	}
	if len(filter.Statuses) > 0 {
		csv := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			csv = append(csv, string(st))
		}
		query.Set("saleStatus", strings.Join(csv, ","))
	}

	var resp struct {
		Sells []OrderDTO `json:"sells"`
		Count int        `json:"count"`
		Meta  struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	if err := cl.c.Get(ctx, "/api/v1/sells", query, &resp); err != nil {
		return app.FetchResult{}, err
	}

	orders := make([]domain.Order, 0, len(resp.Sells))
	for _, d := range resp.Sells {
		orders = append(orders, d.Domain())
	}

	count := resp.Count
	if count == 0 {
		count = resp.Meta.Count
	}
	return app.FetchResult{Orders: orders, Count: count}, nil
}

func (cl *Client) Convert(ctx context.Context, orderID string) (domain.ConvertedOrder, error) {
	var resp struct {
		OriginalOrder struct {
			ID            string          `json:"id"`
			InvoiceNo     string          `json:"invoiceNo"`
			SaleStatus    string          `json:"saleStatus"`
			GrandTotal    decimal.Decimal `json:"grandTotal"`
			TotalProducts int             `json:"totalProducts"`
		} `json:"originalOrder"`
	}
	if err := cl.c.Post(ctx, "/api/v1/sells/"+orderID+"/convert-to-cart", nil, &resp); err != nil {
		return domain.ConvertedOrder{}, err
	}

	return domain.ConvertedOrder{
		ID:            resp.OriginalOrder.ID,
		InvoiceNo:     resp.OriginalOrder.InvoiceNo,
		SaleStatus:    domain.Status(resp.OriginalOrder.SaleStatus),
		GrandTotal:    resp.OriginalOrder.GrandTotal,
		TotalProducts: resp.OriginalOrder.TotalProducts,
	}, nil
}
