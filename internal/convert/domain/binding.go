package domain

import "fmt"

// Binding is the explicit customer-binding state of a cart, instead of an
// easily-misread nullable field.
type Binding struct {
	CustomerID string
}

func Unbound() Binding { return Binding{} }

func BoundTo(customerID string) Binding { return Binding{CustomerID: customerID} }

func (b Binding) Bound() bool { return b.CustomerID != "" }

// Conflict reports an attempt to mix two customers into one cart. It carries
// both identities so the caller can offer "clear the cart and retry".
type Conflict struct {
	Current   string
	Requested string
}

func (c *Conflict) Error() string {
	return fmt.Sprintf("cart is bound to customer %s; cannot mix in items of customer %s", c.Current, c.Requested)
}

// CanBind decides whether items of the requested customer may enter the
// target. Allowed when the target is still empty, when nothing is bound yet,
// or when both sides agree on the customer. Pure; no remote calls happen
// before this verdict.
func CanBind(requested string, current Binding, targetHasItems bool) *Conflict {
	if !targetHasItems {
		return nil
	}
	if !current.Bound() {
		return nil
	}
	if current.CustomerID == requested {
		return nil
	}
	return &Conflict{Current: current.CustomerID, Requested: requested}
}
