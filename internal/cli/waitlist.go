package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	convertapp "github.com/JemilaBekele/mobileforsales-sub000/internal/convert/app"
)

func newWaitlistCommand(opts *RootOptions, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "waitlist",
		Aliases: []string{"wl"},
		Short:   "Park cart items per customer and bring them back",
	}

	cmd.AddCommand(newWaitlistShowCommand(opts, app))
	cmd.AddCommand(newWaitlistParkCommand(opts, app))
	cmd.AddCommand(newWaitlistRemoveCommand(opts, app))
	cmd.AddCommand(newWaitlistConvertCommand(opts, app))
	cmd.AddCommand(newWaitlistClearCartCommand(opts, app))

	return cmd
}

func newWaitlistShowCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch and print the waitlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Wait.Refresh(cmd.Context()); err != nil {
				return err
			}
			return renderWaitlist(cmd.OutOrStdout(), opts, app.Store.Waitlist())
		},
	}
}

func newWaitlistParkCommand(opts *RootOptions, app *App) *cobra.Command {
	var (
		note       string
		customerID string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "park [item-id...]",
		Short: "Move cart items onto the customer's waitlist",
		Long: `Move the selected cart lines onto the waitlist of the cart's customer.

Pass --customer to park for a specific customer; an unbound cart is bound to
that customer first. Items that the backend rejects stay in the cart and are
listed with their reasons.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			itemIDs := args
			if all {
				cart, ok := app.Store.Cart()
				if !ok {
					return fmt.Errorf("no cart loaded; run 'storefront cart show' first")
				}
				itemIDs = cart.ItemIDs()
			}

			out, err := app.Convert.PromoteToWaitlist(cmd.Context(), itemIDs, note, customerID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Format == "json" {
				return renderJSON(w, out)
			}
			fmt.Fprintf(w, "parked %d of %d items\n", out.Promoted, out.Promoted+len(out.Failed))
			for _, f := range out.Failed {
				fmt.Fprintf(w, "  failed %s: %s\n", f.ItemID, f.Reason)
			}
			if out.CartCleared {
				fmt.Fprintln(w, "cart is now empty")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "note attached to every parked item")
	cmd.Flags().StringVar(&customerID, "customer", "", "customer to park for (defaults to the cart's customer)")
	cmd.Flags().BoolVar(&all, "all", false, "park every line in the cart")

	return cmd
}

func newWaitlistRemoveCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Delete a waitlist entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Wait.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newWaitlistClearCartCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cart <cart-id>",
		Short: "Delete every entry parked from one cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Wait.ClearForCart(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cleared")
			return nil
		},
	}
}

func newWaitlistConvertCommand(opts *RootOptions, app *App) *cobra.Command {
	var (
		customerID string
		clearCart  bool
	)

	cmd := &cobra.Command{
		Use:   "convert [item-id]",
		Short: "Move a customer's parked items back into the cart",
		Long: `Convert waitlist entries back into the active cart.

With an item id the owning customer's whole group is converted; with
--customer the group is addressed directly. A cart holding another customer's
items blocks the conversion unless --clear-cart discards it first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 && customerID == "" {
				return fmt.Errorf("pass an item id or --customer")
			}

			run := func() (convertapp.ConvertOutcome, error) {
				switch {
				case clearCart && customerID != "":
					return app.Convert.ConvertWaitlistGroupClearingCart(ctx, customerID)
				case customerID != "":
					return app.Convert.ConvertWaitlistGroup(ctx, customerID)
				default:
					return app.Convert.ConvertWaitlistItem(ctx, args[0])
				}
			}

			out, err := run()
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				return renderJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converted %d items of customer %s\n", out.Converted, out.CustomerID)
			cart, _ := app.Store.Cart()
			return renderCart(cmd.OutOrStdout(), opts, cart)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "convert this customer's whole group")
	cmd.Flags().BoolVar(&clearCart, "clear-cart", false, "clear the current cart first (requires --customer)")

	return cmd
}
