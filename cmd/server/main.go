package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/handler"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/metrics"
	"github.com/MKhiriev/go-shop-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-shop-keeper/internal/server"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/workers"
)

const metricsNamespace = "shop_keeper"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-shop-server")
	if err := run(log); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	log.Debug().
		Str("env", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress()).
		Strs("cors_origins", cfg.Server.CORSOrigins).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
			return
		}
		log.Info().Msg("database connection closed")
	}()

	services := service.NewServices(storages, *cfg, log)

	limiters, err := ratelimit.NewSet(cfg.RateLimit, cfg.Workers.LimiterCleanupInterval, log)
	if err != nil {
		return fmt.Errorf("error creating rate limiters: %w", err)
	}
	defer limiters.Close()

	var background []workers.Worker
	if limiters.Cleanup != nil {
		background = append(background, limiters.Cleanup)
	}
	bgWorkers := workers.NewWorkers(background...)
	bgWorkers.Run(ctx)
	defer bgWorkers.Wait()
	defer cancel()

	handlers, err := handler.NewHandlers(services, *cfg, limiters, metrics.New(metricsNamespace), log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
