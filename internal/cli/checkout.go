package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	convertapp "github.com/JemilaBekele/mobileforsales-sub000/internal/convert/app"
	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
)

func newCheckoutCommand(opts *RootOptions, app *App) *cobra.Command {
	var (
		customerID string
		payment    string
		discount   string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Finalize the cart into an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := convertapp.CheckoutInput{
				CustomerID:    customerID,
				PaymentMethod: payment,
			}
			if discount != "" {
				d, err := decimal.NewFromString(discount)
				if err != nil {
					return fmt.Errorf("invalid discount %q: %w", discount, err)
				}
				in.Discount = &d
			}
			if notes != "" {
				in.Notes = &notes
			}

			order, err := app.Convert.Checkout(cmd.Context(), in)
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				return renderJSON(cmd.OutOrStdout(), order)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s (%s) created, total %s\n",
				order.InvoiceNo, order.ID, order.GrandTotal)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer to invoice (defaults to the cart's customer)")
	cmd.Flags().StringVar(&payment, "payment", "CASH", "payment method")
	cmd.Flags().StringVar(&discount, "discount", "", "discount applied before checkout")
	cmd.Flags().StringVar(&notes, "notes", "", "order notes")

	return cmd
}

func newRefreshCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch cart, waitlist and orders in one go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Convert.RefreshAll(cmd.Context(), orderdomain.Filter{}); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			cart, _ := app.Store.Cart()
			if err := renderCart(w, opts, cart); err != nil {
				return err
			}
			fmt.Fprintf(w, "waitlist: %d items, orders: %d\n", app.Store.WaitlistCount(), app.Store.OrderCount())
			return nil
		},
	}
}
