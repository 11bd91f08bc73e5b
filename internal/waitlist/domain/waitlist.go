package domain

import "github.com/shopspring/decimal"

// Item is a customer-scoped parked cart line. A waitlist entry cannot exist
// without a customer; the snapshot freezes the cart line as it looked at
// promotion time.
type Item struct {
	ID         string
	CustomerID string
	CartID     string
	CartItemID string
	Note       string
	Snapshot   Snapshot
}

type Snapshot struct {
	ProductID string
	ShopID    string
	Quantity  int
	UnitPrice decimal.Decimal
}

// ItemError is a per-item failure inside a bulk response.
type ItemError struct {
	ItemID string
	Label  string
	Reason string
}

// BulkResult is the backend's answer to a bulk waitlist operation: per-item
// success and failure, never an all-or-nothing error.
type BulkResult struct {
	TotalItems      int
	SuccessfulItems int
	FailedItems     int
	Items           []Item
	Errors          []ItemError
}
