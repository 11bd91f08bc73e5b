package domain

import (
	"errors"
	"testing"
)

func TestConvertible(t *testing.T) {
	cases := []struct {
		name   string
		status Status
		locked bool
		ok     bool
	}{
		{"approved unlocked", StatusApproved, false, true},
		{"not approved unlocked", StatusNotApproved, false, true},
		{"pending unlocked", StatusPending, false, true},
		{"approved locked", StatusApproved, true, false},
		{"cancelled", StatusCancelled, false, false},
		{"delivered", StatusDelivered, false, false},
		{"partially delivered", StatusPartialDelivered, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := &Order{ID: "o1", InvoiceNo: "INV-1", Status: tc.status, Locked: tc.locked}
			err := o.Convertible()
			if tc.ok && err != nil {
				t.Fatalf("expected convertible, got %v", err)
			}
			if !tc.ok {
				var nc *NotConvertibleError
				if !errors.As(err, &nc) {
					t.Fatalf("expected NotConvertibleError, got %v", err)
				}
				if nc.Locked != tc.locked {
					t.Fatalf("error does not name the lock: %+v", nc)
				}
			}
		})
	}
}

func TestNotConvertibleErrorNamesTheOrder(t *testing.T) {
	t.Run("prefers the invoice number", func(t *testing.T) {
		err := &NotConvertibleError{OrderID: "o1", InvoiceNo: "INV-1", Locked: true}
		if got := err.Error(); got != "order INV-1 is locked" {
			t.Fatalf("msg=%q", got)
		}
	})

	t.Run("falls back to the id when the invoice is missing", func(t *testing.T) {
		err := &NotConvertibleError{OrderID: "o1", Status: StatusCancelled}
		if got := err.Error(); got != "order o1 has status CANCELLED and cannot return to a cart" {
			t.Fatalf("msg=%q", got)
		}
	})
}

func TestDropConvertedMatchesInvoiceFirst(t *testing.T) {
	orders := []Order{
		{ID: "id-a", InvoiceNo: "INV-1"},
		{ID: "id-b", InvoiceNo: "INV-2"},
	}

	t.Run("invoice wins over id", func(t *testing.T) {
		// The echoed id points at a different order; invoice number decides.
		rest, ok := DropConverted(orders, ConvertedOrder{ID: "id-b", InvoiceNo: "INV-1"})
		if !ok || len(rest) != 1 || rest[0].InvoiceNo != "INV-2" {
			t.Fatalf("ok=%v rest=%v", ok, rest)
		}
	})

	t.Run("invoice wins even when the id match comes first", func(t *testing.T) {
		// The id points at the first order, the invoice at the second. The
		// invoice pass must finish before ids are consulted at all.
		reversed := []Order{
			{ID: "id-b", InvoiceNo: "INV-2"},
			{ID: "id-a", InvoiceNo: "INV-1"},
		}
		rest, ok := DropConverted(reversed, ConvertedOrder{ID: "id-b", InvoiceNo: "INV-1"})
		if !ok || len(rest) != 1 || rest[0].InvoiceNo != "INV-2" {
			t.Fatalf("ok=%v rest=%v", ok, rest)
		}
	})

	t.Run("falls back to id", func(t *testing.T) {
		rest, ok := DropConverted(orders, ConvertedOrder{ID: "id-b"})
		if !ok || len(rest) != 1 || rest[0].ID != "id-a" {
			t.Fatalf("ok=%v rest=%v", ok, rest)
		}
	})

	t.Run("no match leaves slice alone", func(t *testing.T) {
		rest, ok := DropConverted(orders, ConvertedOrder{ID: "id-z", InvoiceNo: "INV-9"})
		if ok || len(rest) != 2 {
			t.Fatalf("ok=%v rest=%v", ok, rest)
		}
	})
}
