// Package main provides the CLI entrypoint for uploadwire.
//
// uploadwire turns an uploader configuration into service registry wiring:
//   - check validates a configuration file and prints diagnostics
//   - resolve wires a fresh registry and prints it as YAML
//   - templates lists the base service templates a configuration loads
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "uploadwire:", err)
		os.Exit(1)
	}
}
