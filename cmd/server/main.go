// Command server runs the studybuddy collaborator API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/studybuddy/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunServer(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
