// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-code-review/internal/adapter"
	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/handler"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/internal/notify"
	"github.com/MKhiriev/go-code-review/internal/server"
	"github.com/MKhiriev/go-code-review/internal/service"
	"github.com/MKhiriev/go-code-review/internal/session"
	"github.com/MKhiriev/go-code-review/internal/store"
	"github.com/MKhiriev/go-code-review/internal/workers"
	"github.com/MKhiriev/go-code-review/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("code-review-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("code-review-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("session_store", cfg.App.SessionStore).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	var redisClient session.RedisClient
	if cfg.App.SessionStore == config.SessionStoreRedis {
		client, err := store.NewConnectRedis(ctx, cfg.Storage.Redis, log)
		if err != nil {
			return err
		}
		defer client.Close()
		redisClient = client
	}

	sessions, err := session.NewStore(cfg.App, redisClient, log)
	if err != nil {
		return fmt.Errorf("error creating session store: %w", err)
	}

	providers, err := adapter.NewProviderRegistry(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating AI providers: %w", err)
	}

	mailer := notify.NewSMTPMailer(cfg.SMTP, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(storages, providers, mailer, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
	}()

	err = srv.RunServer(ctx)
	stop()
	wg.Wait()

	return err
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

	fmt.Fprintf(os.Stdout, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stdout, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stdout, "Build commit: %s\n", buildCommit)
}
