// Command server runs the rule-based translation REST API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables.
// SIGINT/SIGTERM trigger a graceful shutdown; SIGHUP reloads the lexicon.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/rbmt-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
