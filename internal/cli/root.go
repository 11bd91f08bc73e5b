// Package cli wires the storefront services into a cobra command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	authapp "github.com/JemilaBekele/mobileforsales-sub000/internal/auth/app"
	authrest "github.com/JemilaBekele/mobileforsales-sub000/internal/auth/infra/rest"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/auth/infra/token"
	cartapp "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/app"
	cartrest "github.com/JemilaBekele/mobileforsales-sub000/internal/cart/infra/rest"
	convertapp "github.com/JemilaBekele/mobileforsales-sub000/internal/convert/app"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/convert/infra/adapter"
	orderapp "github.com/JemilaBekele/mobileforsales-sub000/internal/order/app"
	orderrest "github.com/JemilaBekele/mobileforsales-sub000/internal/order/infra/rest"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
	wlapp "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/app"
	wlrest "github.com/JemilaBekele/mobileforsales-sub000/internal/waitlist/infra/rest"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/config"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/logger"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/rest"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// App carries the wired services. Commands reach the backend only through it.
type App struct {
	Log     *slog.Logger
	Store   *store.Store
	Client  *rest.Client
	Cart    *cartapp.Service
	Wait    *wlapp.Service
	Orders  *orderapp.Service
	Convert *convertapp.Service
	Auth    *authapp.Service
}

func newApp(opts *RootOptions) (*App, error) {
	cfg := config.Load()

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	log := logger.New(logger.Options{
		App:    "storefront",
		Env:    cfg.AppEnv,
		Level:  level,
		Format: "text",
	})

	tokenPath, err := token.DefaultPath()
	if err != nil {
		return nil, err
	}
	tokens := token.NewFileStore(tokenPath)

	bearer := cfg.APIToken
	if bearer == "" {
		if bearer, err = tokens.Load(); err != nil {
			return nil, err
		}
	}

	client := rest.NewClient(cfg.APIBaseURL,
		rest.WithToken(bearer),
		rest.WithTimeout(cfg.HTTPTimeout),
		rest.WithLogger(log),
	)

	st := store.New()
	cartAPI := cartrest.NewClient(client)
	wlAPI := wlrest.NewClient(client)
	orderAPI := orderrest.NewClient(client)

	cartSvc := cartapp.NewService(cartAPI, st, log)
	wlSvc := wlapp.NewService(wlAPI, st, log)
	orderSvc := orderapp.NewService(orderAPI, st, log)

	convertSvc := convertapp.NewService(st,
		adapter.NewCartAdapter(cartSvc, cartAPI, st),
		adapter.NewWaitlistAdapter(wlSvc, wlAPI, st),
		adapter.NewOrderAdapter(orderSvc, orderAPI, st),
		log,
	)

	return &App{
		Log:     log,
		Store:   st,
		Client:  client,
		Cart:    cartSvc,
		Wait:    wlSvc,
		Orders:  orderSvc,
		Convert: convertSvc,
		Auth:    authapp.NewService(authrest.NewClient(client), tokens, client, log),
	}, nil
}

// NewRootCommand builds the storefront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	app := &App{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Mobile storefront cart, waitlist and order client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "text" && opts.Format != "json" {
				return fmt.Errorf("invalid format %q: must be text or json", opts.Format)
			}
			wired, err := newApp(opts)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(newAuthCommand(opts, app))
	cmd.AddCommand(newCartCommand(opts, app))
	cmd.AddCommand(newWaitlistCommand(opts, app))
	cmd.AddCommand(newOrdersCommand(opts, app))
	cmd.AddCommand(newCheckoutCommand(opts, app))
	cmd.AddCommand(newRefreshCommand(opts, app))

	return cmd
}
