package main

import (
	"context"
	"fmt"
	"os"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/cli"
	"github.com/JemilaBekele/mobileforsales-sub000/pkg/shutdown"
)

func main() {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	root := cli.NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}
