// Command server runs the project tracking HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; a .env file in the working directory is loaded first when
// present. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/BhaveshChowdary07/ptas-api/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
