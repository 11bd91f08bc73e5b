package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	cartapp "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/app"
)

func newCartCommand(opts *RootOptions, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and edit the active cart",
	}

	cmd.AddCommand(newCartShowCommand(opts, app))
	cmd.AddCommand(newCartAddCommand(opts, app))
	cmd.AddCommand(newCartQtyCommand(opts, app))
	cmd.AddCommand(newCartBumpCommand(opts, app, "inc", "Increase a line's quantity by one"))
	cmd.AddCommand(newCartBumpCommand(opts, app, "dec", "Decrease a line's quantity by one"))
	cmd.AddCommand(newCartPriceCommand(opts, app))
	cmd.AddCommand(newCartNoteCommand(opts, app))
	cmd.AddCommand(newCartRemoveCommand(opts, app))
	cmd.AddCommand(newCartAssignCommand(opts, app))
	cmd.AddCommand(newCartClearCommand(opts, app))

	return cmd
}

func newCartShowCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch and print the active cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Refresh(cmd.Context()); err != nil {
				return err
			}
			cart, _ := app.Store.Cart()
			return renderCart(cmd.OutOrStdout(), opts, cart)
		},
	}
}

func newCartAddCommand(opts *RootOptions, app *App) *cobra.Command {
	var (
		shopID string
		qty    int
		price  string
		note   string
	)

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}
			item, err := app.Cart.AddItem(cmd.Context(), cartapp.AddItemInput{
				ProductID: args[0],
				ShopID:    shopID,
				Quantity:  qty,
				UnitPrice: unit,
				Note:      note,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s: %d x %s\n", item.ID, item.Quantity, item.UnitPrice)
			return nil
		},
	}

	cmd.Flags().StringVar(&shopID, "shop", "", "shop the product sells from (required)")
	cmd.Flags().IntVar(&qty, "qty", 1, "quantity")
	cmd.Flags().StringVar(&price, "price", "", "unit price (required)")
	cmd.Flags().StringVar(&note, "note", "", "line note")
	_ = cmd.MarkFlagRequired("shop")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newCartQtyCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "qty <item-id> <quantity>",
		Short: "Set a line's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}
			item, err := app.Cart.SetQuantity(cmd.Context(), args[0], qty)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d x %s = %s\n", item.ID, item.Quantity, item.UnitPrice, item.TotalPrice)
			return nil
		},
	}
}

func newCartBumpCommand(opts *RootOptions, app *App, direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction + " <item-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bump := app.Cart.Increment
			if direction == "dec" {
				bump = app.Cart.Decrement
			}
			item, err := bump(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d x %s = %s\n", item.ID, item.Quantity, item.UnitPrice, item.TotalPrice)
			return nil
		},
	}
}

func newCartPriceCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "price <item-id> <unit-price>",
		Short: "Override a line's unit price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[1], err)
			}
			item, err := app.Cart.SetUnitPrice(cmd.Context(), args[0], price)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d x %s = %s\n", item.ID, item.Quantity, item.UnitPrice, item.TotalPrice)
			return nil
		},
	}
}

func newCartNoteCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note <item-id> <note>",
		Short: "Attach a note to a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Cart.SetNote(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "note set")
			return nil
		},
	}
}

func newCartRemoveCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.RemoveItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newCartAssignCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <customer-id>",
		Short: "Bind the cart to a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.AssignCustomer(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cart bound to %s\n", args[0])
			return nil
		},
	}
}

func newCartClearCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart and unbind its customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
			return nil
		},
	}
}
