package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
)

// OrderDTO is the backend's sell shape. Exported because the cart checkout
// response embeds the same shape.
type OrderDTO struct {
	ID            string          `json:"id"`
	InvoiceNo     string          `json:"invoiceNo"`
	SaleStatus    string          `json:"saleStatus"`
	Locked        bool            `json:"locked"`
	CustomerID    string          `json:"customerId"`
	Items         []SellItemDTO   `json:"sellItems"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	Discount      decimal.Decimal `json:"discount"`
	VAT           decimal.Decimal `json:"vat"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	TotalProducts int             `json:"totalProducts"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type SellItemDTO struct {
	ID             string               `json:"id"`
	OrderID        string               `json:"sellId"`
	ProductID      string               `json:"productId"`
	ShopID         string               `json:"shopId"`
	UnitID         string               `json:"unitId"`
	Quantity       int                  `json:"quantity"`
	UnitPrice      decimal.Decimal      `json:"unitPrice"`
	TotalPrice     decimal.Decimal      `json:"totalPrice"`
	DeliveryStatus string               `json:"deliveryStatus"`
	Batches        []BatchAllocationDTO `json:"batches"`
}

type BatchAllocationDTO struct {
	BatchID  string `json:"batchId"`
	Quantity int    `json:"quantity"`
}

func (d OrderDTO) Domain() domain.Order {
	items := make([]domain.SellItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, it.domain())
	}
	return domain.Order{
		ID:            d.ID,
		InvoiceNo:     d.InvoiceNo,
		Status:        domain.Status(d.SaleStatus),
		Locked:        d.Locked,
		CustomerID:    d.CustomerID,
		Items:         items,
		SubTotal:      d.SubTotal,
		Discount:      d.Discount,
		VAT:           d.VAT,
		GrandTotal:    d.GrandTotal,
		NetTotal:      d.NetTotal,
		TotalProducts: d.TotalProducts,
		CreatedAt:     d.CreatedAt,
	}
}

func (d SellItemDTO) domain() domain.SellItem {
	batches := make([]domain.BatchAllocation, 0, len(d.Batches))
	for _, b := range d.Batches {
		batches = append(batches, domain.BatchAllocation{BatchID: b.BatchID, Quantity: b.Quantity})
	}
	return domain.SellItem{
		ID:             d.ID,
		OrderID:        d.OrderID,
		ProductID:      d.ProductID,
		ShopID:         d.ShopID,
		UnitID:         d.UnitID,
		Quantity:       d.Quantity,
		UnitPrice:      d.UnitPrice,
		TotalPrice:     d.TotalPrice,
		DeliveryStatus: domain.DeliveryStatus(d.DeliveryStatus),
		Batches:        batches,
	}
}
