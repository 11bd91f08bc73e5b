package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusNotApproved      Status = "NOT_APPROVED"
	StatusPending          Status = "PENDING"
	StatusPartialDelivered Status = "PARTIAL_DELIVERED"
	StatusApproved         Status = "APPROVED"
	StatusDelivered        Status = "DELIVERED"
	StatusCancelled        Status = "CANCELLED"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
)

// Order is a checked-out sell. Immutable on this client except through the
// order-to-cart conversion, which retires it.
type Order struct {
	ID            string
	InvoiceNo     string
	Status        Status
	Locked        bool
	CustomerID    string
	Items         []SellItem
	SubTotal      decimal.Decimal
	Discount      decimal.Decimal
	VAT           decimal.Decimal
	GrandTotal    decimal.Decimal
	NetTotal      decimal.Decimal
	TotalProducts int
	CreatedAt     time.Time
}

type SellItem struct {
	ID             string
	OrderID        string
	ProductID      string
	ShopID         string
	UnitID         string
	Quantity       int
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
	DeliveryStatus DeliveryStatus
	Batches        []BatchAllocation
}

// BatchAllocation records which stock batch a sell item drew from. Provenance
// only; never mutated by this client.
type BatchAllocation struct {
	BatchID  string
	Quantity int
}

// NotConvertibleError names the exact condition blocking an order-to-cart
// conversion so the caller can explain it without guessing.
type NotConvertibleError struct {
	OrderID   string
	InvoiceNo string
	Status    Status
	Locked    bool
}

func (e *NotConvertibleError) Error() string {
	name := e.InvoiceNo
	if name == "" {
		name = e.OrderID
	}
	if e.Locked {
		return fmt.Sprintf("order %s is locked", name)
	}
	return fmt.Sprintf("order %s has status %s and cannot return to a cart", name, e.Status)
}

// Convertible reports whether the order may be turned back into a cart.
func (o *Order) Convertible() error {
	if o.Locked {
		return &NotConvertibleError{OrderID: o.ID, InvoiceNo: o.InvoiceNo, Status: o.Status, Locked: true}
	}
	switch o.Status {
	case StatusNotApproved, StatusApproved, StatusPending:
		return nil
	default:
		return &NotConvertibleError{OrderID: o.ID, InvoiceNo: o.InvoiceNo, Status: o.Status}
	}
}

// ConvertedOrder is the backend's echo of the order consumed by a conversion.
// The id is not always echoed back, hence the invoice number.
type ConvertedOrder struct {
	ID            string
	InvoiceNo     string
	SaleStatus    Status
	GrandTotal    decimal.Decimal
	TotalProducts int
}

// DropConverted removes the consumed order, matching invoice number first and
// falling back to id. Returns the remaining slice and whether a match was cut.
// The invoice pass covers the whole slice before the id pass starts, so an id
// collision elsewhere in the list never outranks an invoice match.
func DropConverted(orders []Order, converted ConvertedOrder) ([]Order, bool) {
	cut := func(idx int) []Order {
		return append(orders[:idx:idx], orders[idx+1:]...)
	}
	if converted.InvoiceNo != "" {
		for idx, o := range orders {
			if o.InvoiceNo == converted.InvoiceNo {
				return cut(idx), true
			}
		}
	}
	if converted.ID != "" {
		for idx, o := range orders {
			if o.ID == converted.ID {
				return cut(idx), true
			}
		}
	}
	return orders, false
}
