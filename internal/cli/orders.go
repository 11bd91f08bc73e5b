package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	orderdomain "github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
)

func newOrdersCommand(opts *RootOptions, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders and convert them back into the cart",
	}

	cmd.AddCommand(newOrdersShowCommand(opts, app))
	cmd.AddCommand(newOrdersConvertCommand(opts, app))

	return cmd
}

func newOrdersShowCommand(opts *RootOptions, app *App) *cobra.Command {
	var (
		from     string
		to       string
		customer string
		statuses []string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch and print the order list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := orderdomain.Filter{CustomerName: customer}
			for _, s := range statuses {
				filter.Statuses = append(filter.Statuses, orderdomain.Status(s))
			}
			if from != "" {
				t, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid --from %q: %w", from, err)
				}
				filter.From = &t
			}
			if to != "" {
				t, err := time.Parse("2006-01-02", to)
				if err != nil {
					return fmt.Errorf("invalid --to %q: %w", to, err)
				}
				filter.To = &t
			}

			if err := app.Orders.Refresh(cmd.Context(), filter); err != nil {
				return err
			}
			return renderOrders(cmd.OutOrStdout(), opts, app.Store.Orders())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&customer, "customer", "", "filter by customer name")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by sale status (repeatable)")

	return cmd
}

func newOrdersConvertCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <order-id>",
		Short: "Turn an order back into the active cart",
		Long: `Convert an order back into the active cart, retiring the order.

Locked orders and orders in a terminal status are rejected locally before any
backend call.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Convert.ConvertOrder(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "order converted")
			cart, _ := app.Store.Cart()
			return renderCart(cmd.OutOrStdout(), opts, cart)
		},
	}
}
