package domain

import "testing"

func TestCanBind(t *testing.T) {
	t.Run("empty target always binds", func(t *testing.T) {
		if c := CanBind("c2", BoundTo("c1"), false); c != nil {
			t.Fatalf("unexpected conflict: %v", c)
		}
	})

	t.Run("unbound target binds", func(t *testing.T) {
		if c := CanBind("c2", Unbound(), true); c != nil {
			t.Fatalf("unexpected conflict: %v", c)
		}
	})

	t.Run("same customer binds", func(t *testing.T) {
		if c := CanBind("c1", BoundTo("c1"), true); c != nil {
			t.Fatalf("unexpected conflict: %v", c)
		}
	})

	t.Run("different customers conflict with both ids", func(t *testing.T) {
		c := CanBind("c2", BoundTo("c1"), true)
		if c == nil {
			t.Fatal("expected conflict")
		}
		if c.Current != "c1" || c.Requested != "c2" {
			t.Fatalf("conflict ids: %+v", c)
		}
	})
}
