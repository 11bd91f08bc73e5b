package domain

import "testing"

func wlItem(id, customer string) Item {
	return Item{ID: id, CustomerID: customer}
}

func TestReconcilePrependsSuccesses(t *testing.T) {
	local := []Item{wlItem("old-1", "c1"), wlItem("old-2", "c2")}

	res := BulkResult{
		TotalItems:      2,
		SuccessfulItems: 2,
		Items:           []Item{wlItem("new-1", "c1"), wlItem("new-2", "c1")},
	}

	merged := Reconcile(local, res)
	if len(merged) != 4 {
		t.Fatalf("len=%d, want 4", len(merged))
	}
	if merged[0].ID != "new-1" || merged[1].ID != "new-2" {
		t.Fatalf("successes not at the front: %v", merged)
	}
}

func TestReconcileDeduplicatesSupersededEntries(t *testing.T) {
	local := []Item{wlItem("w1", "c1"), wlItem("w2", "c1")}

	// The server re-issues w1 (e.g. a retried promote); it must not appear twice.
	res := BulkResult{
		TotalItems:      1,
		SuccessfulItems: 1,
		Items:           []Item{wlItem("w1", "c1")},
	}

	merged := Reconcile(local, res)
	if len(merged) != 2 {
		t.Fatalf("len=%d, want 2", len(merged))
	}
	seen := map[string]int{}
	for _, it := range merged {
		seen[it.ID]++
	}
	if seen["w1"] != 1 {
		t.Fatalf("w1 appears %d times", seen["w1"])
	}
}

func TestReconcileWithEmptyResultIsIdentity(t *testing.T) {
	local := []Item{wlItem("w1", "c1")}
	res := BulkResult{TotalItems: 1, FailedItems: 1, Errors: []ItemError{{ItemID: "x", Reason: "out of stock"}}}

	merged := Reconcile(local, res)
	if len(merged) != 1 || merged[0].ID != "w1" {
		t.Fatalf("collection changed on all-failed result: %v", merged)
	}
}

func TestDropByCustomerRemovesWholeGroup(t *testing.T) {
	local := []Item{wlItem("w1", "c1"), wlItem("w2", "c2"), wlItem("w3", "c1")}

	kept := DropByCustomer(local, "c1")
	if len(kept) != 1 || kept[0].ID != "w2" {
		t.Fatalf("kept=%v", kept)
	}
}

func TestDropByID(t *testing.T) {
	local := []Item{wlItem("w1", "c1"), wlItem("w2", "c1")}

	kept := DropByID(local, "w1")
	if len(kept) != 1 || kept[0].ID != "w2" {
		t.Fatalf("kept=%v", kept)
	}

	if got := DropByID(kept, "missing"); len(got) != 1 {
		t.Fatalf("drop of missing id changed collection: %v", got)
	}
}
