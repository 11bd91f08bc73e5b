package domain

import "github.com/shopspring/decimal"

// Cart is the single active, pre-checkout cart of the authenticated user.
// TotalItems and TotalAmount always equal the fold over Items; every mutation
// below adjusts them in the same step.
type Cart struct {
	ID          string
	UserID      string
	CustomerID  string // empty while unbound
	Items       []Item
	TotalItems  int
	TotalAmount decimal.Decimal
	CheckedOut  bool
}

type Item struct {
	ID         string
	CartID     string
	ShopID     string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Note       string
}

// LineTotal recomputes quantity × unit price. The server stays authoritative
// for the persisted TotalPrice; this is the local prediction.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (c *Cart) HasItems() bool {
	return c != nil && len(c.Items) > 0
}

func (c *Cart) ItemIDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.ID)
	}
	return ids
}

func (c *Cart) Find(itemID string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return Item{}, false
}

// Recompute rebuilds both aggregates from the items. Used after wholesale
// replacement from the server, never inside an optimistic prediction.
func (c *Cart) Recompute() {
	c.TotalItems = 0
	c.TotalAmount = decimal.Zero
	for _, it := range c.Items {
		c.TotalItems += it.Quantity
		c.TotalAmount = c.TotalAmount.Add(it.TotalPrice)
	}
}

// Append adds a fresh line and grows the aggregates by exactly that line.
func (c *Cart) Append(item Item) {
	c.Items = append(c.Items, item)
	c.TotalItems += item.Quantity
	c.TotalAmount = c.TotalAmount.Add(item.TotalPrice)
}

// Replace swaps an existing line in place, shifting the aggregates by the
// delta between the old and the new line.
func (c *Cart) Replace(item Item) bool {
	for idx, it := range c.Items {
		if it.ID != item.ID {
			continue
		}
		c.TotalItems += item.Quantity - it.Quantity
		c.TotalAmount = c.TotalAmount.Sub(it.TotalPrice).Add(item.TotalPrice)
		c.Items[idx] = item
		return true
	}
	return false
}

// Splice removes a line and subtracts its exact quantity and total from the
// aggregates. Deliberately not a re-sum, so a prediction never invents a new
// baseline. An emptied cart loses its customer binding.
func (c *Cart) Splice(itemID string) (Item, bool) {
	for idx, it := range c.Items {
		if it.ID != itemID {
			continue
		}
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		c.TotalItems -= it.Quantity
		c.TotalAmount = c.TotalAmount.Sub(it.TotalPrice)
		if len(c.Items) == 0 {
			c.Clear()
		}
		return it, true
	}
	return Item{}, false
}

// Clear empties the cart: items gone, aggregates zeroed, customer unbound.
func (c *Cart) Clear() {
	c.Items = nil
	c.TotalItems = 0
	c.TotalAmount = decimal.Zero
	c.CustomerID = ""
}

// Clone returns a deep copy safe to hand outside the store.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = append([]Item(nil), c.Items...)
	return &cp
}
