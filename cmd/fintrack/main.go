// Command fintrack prints the dashboard, a period report or the list of
// transaction categories for the configured store.
//
//	fintrack [dashboard]
//	fintrack report [year]
//	fintrack categories
//
// Configuration comes from the environment and an optional .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/log"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

func main() {
	cli.LoadEnvFile()
	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel)
	cli.ValidateConfig(logger, cfg)
	logger.Info("Starting fintrack", log.FieldOperation, log.OpStartup, log.FieldBackend, cfg.StoreBackend)

	ctx := context.Background()
	store := cli.OpenStore(ctx, logger, cfg)
	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", log.FieldOperation, log.OpShutdown, log.FieldError, err)
			return
		}
		logger.Debug("Store closed", log.FieldOperation, log.OpShutdown)
	}
	defer closeStore()

	svc := services.NewFinanceService(store.Store, services.WithLogger(logger))
	svc.Load(ctx)

	if err := run(os.Stdout, os.Args[1:], cfg, svc, time.Now(), logger); err != nil {
		logger.Error("Command failed", log.FieldError, err)
		closeStore()
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, cfg *config.Config, svc *services.FinanceService, now time.Time, logger *log.Logger) error {
	cmd := "dashboard"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "dashboard":
		d := report.BuildDashboard(svc.Snapshot(), now, cfg.RecentN)
		return writeDashboard(w, d)
	case "report":
		year := now.Year()
		if len(args) > 1 {
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[1], err)
			}
			year = y
		}
		logger.WithComponent(log.ComponentReport).Info("Building report",
			log.FieldYear, year, log.FieldPeriod, cfg.ReportPeriod)
		r, err := report.BuildReport(svc.Snapshot(), year, report.Period(cfg.ReportPeriod), cfg.TopN)
		if err != nil {
			return err
		}
		return writeReport(w, r)
	case "categories":
		return writeCategories(w, report.Categories(svc.Snapshot().Transactions))
	default:
		return fmt.Errorf("unknown command %q: want dashboard, report or categories", cmd)
	}
}
