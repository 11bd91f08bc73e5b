package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	cartdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	wldomain "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/domain"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderCart(w io.Writer, opts *RootOptions, cart *cartdomain.Cart) error {
	if opts.Format == "json" {
		return renderJSON(w, cart)
	}
	if cart == nil || !cart.HasItems() {
		fmt.Fprintln(w, "cart is empty")
		return nil
	}

	if cart.CustomerID != "" {
		fmt.Fprintf(w, "customer: %s\n", cart.CustomerID)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tPRODUCT\tQTY\tUNIT\tTOTAL\tNOTE")
	for _, it := range cart.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			it.ID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice, it.Note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d items, total %s\n", cart.TotalItems, cart.TotalAmount)
	return nil
}

func renderWaitlist(w io.Writer, opts *RootOptions, items []wldomain.Item) error {
	if opts.Format == "json" {
		return renderJSON(w, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "waitlist is empty")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tCUSTOMER\tPRODUCT\tQTY\tUNIT\tNOTE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			it.ID, it.CustomerID, it.Snapshot.ProductID, it.Snapshot.Quantity, it.Snapshot.UnitPrice, it.Note)
	}
	return tw.Flush()
}

func renderOrders(w io.Writer, opts *RootOptions, orders []orderdomain.Order) error {
	if opts.Format == "json" {
		return renderJSON(w, orders)
	}
	if len(orders) == 0 {
		fmt.Fprintln(w, "no orders")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tINVOICE\tCUSTOMER\tSTATUS\tTOTAL")
	for _, o := range orders {
		locked := ""
		if o.Locked {
			locked = " (locked)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\t%s\n",
			o.ID, o.InvoiceNo, o.CustomerID, o.Status, locked, o.GrandTotal)
	}
	return tw.Flush()
}
