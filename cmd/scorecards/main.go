// Command scorecards parses the configured score cards once and
// writes the combined record table as a UTF-8 BOM CSV, without
// starting the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"parkpulse/internal/config"
	"parkpulse/internal/dashboard"
	"parkpulse/internal/exporter"
	"parkpulse/internal/infrastructure"
	"parkpulse/internal/services"
)

func main() {
	var (
		output = flag.String("o", config.ExportFileName, "output CSV path")
		player = flag.String("player", "", "only this player's records (empty = all)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	service := services.NewScorecardService(cfg.Scorecards, nil, logger)
	table, err := service.Table(ctx)
	if err != nil {
		logger.Error("parse failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, warning := range service.Warnings() {
		logger.Warn("score card skipped", slog.String("reason", warning))
	}

	rows := dashboard.Rows(table.View(dashboard.Filter{Player: *player}))
	if err := exporter.WriteFile(*output, exporter.RecordsDocument(rows)); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("export written",
		slog.String("path", *output),
		slog.Int("records", len(rows)))
}
