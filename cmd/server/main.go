package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/handler"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/internal/server"
	"github.com/MKhiriev/go-docs-keeper/internal/service"
	"github.com/MKhiriev/go-docs-keeper/internal/store"
	"github.com/MKhiriev/go-docs-keeper/internal/workers"
	"github.com/MKhiriev/go-docs-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("docs-keeper-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(context.Background(), cfg, buildInfo, log); err != nil {
		log.Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(parent context.Context, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(ctx, storages, *cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	watcher := workers.NewFolderWatcher(services.PreferencesService, services.EventsService, cfg.Workspace, cfg.Workers, log)

	handlers, err := handler.NewHandlers(services, watcher, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	backgroundWorkers := workers.NewWorkers(watcher)
	backgroundWorkers.Run(ctx)
	defer backgroundWorkers.Wait()
	defer cancel()

	return srv.RunServer(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
