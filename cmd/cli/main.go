package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jdisla/medioambiente-cli/internal/buildinfo"
	"github.com/jdisla/medioambiente-cli/internal/cli"
	"github.com/jdisla/medioambiente-cli/internal/config"
	"github.com/jdisla/medioambiente-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
