// Command server runs the obscenity filter HTTP API.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) plus environment
// overrides. SIGINT/SIGTERM trigger graceful shutdown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/textwarden/obscenity-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
