package domain

// Reconcile merges a bulk response into the local collection: entries
// superseded by a successful result are dropped, the successful items go to
// the front (insertion order is the display order), failed source items are
// left alone. The caller derives the collection count from len() of the
// returned slice, never from a stale counter.
func Reconcile(existing []Item, res BulkResult) []Item {
	if len(res.Items) == 0 {
		return existing
	}

	incoming := make(map[string]struct{}, len(res.Items))
	for _, it := range res.Items {
		incoming[it.ID] = struct{}{}
	}

	merged := make([]Item, 0, len(existing)+len(res.Items))
	merged = append(merged, res.Items...)
	for _, it := range existing {
		if _, dup := incoming[it.ID]; dup {
			continue
		}
		merged = append(merged, it)
	}
	return merged
}

// DropByCustomer removes every entry of one customer group. Group conversion
// is all-or-nothing per customer by backend contract, so the response is not
// consulted item by item.
func DropByCustomer(existing []Item, customerID string) []Item {
	kept := existing[:0:0]
	for _, it := range existing {
		if it.CustomerID != customerID {
			kept = append(kept, it)
		}
	}
	return kept
}

// DropByCart removes every entry that originated from the given cart.
func DropByCart(existing []Item, cartID string) []Item {
	kept := existing[:0:0]
	for _, it := range existing {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	return kept
}

// DropByID removes a single entry.
func DropByID(existing []Item, itemID string) []Item {
	for idx, it := range existing {
		if it.ID == itemID {
			return append(existing[:idx:idx], existing[idx+1:]...)
		}
	}
	return existing
}
