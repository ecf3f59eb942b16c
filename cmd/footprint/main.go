// footprint is the command-line front end of the emission engine.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"carbon-footprint/backend/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
