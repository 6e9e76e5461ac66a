package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/biteai-labs/biteai-core/internal/cli"
	"github.com/biteai-labs/biteai-core/internal/config"
	"github.com/biteai-labs/biteai-core/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
