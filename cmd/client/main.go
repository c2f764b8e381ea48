// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-chat-cli/internal/adapter"
	"github.com/MKhiriev/go-chat-cli/internal/client"
	"github.com/MKhiriev/go-chat-cli/internal/config"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/internal/service"
	"github.com/MKhiriev/go-chat-cli/internal/store"
	"github.com/MKhiriev/go-chat-cli/internal/tui"
	"github.com/MKhiriev/go-chat-cli/models"
	"github.com/spf13/pflag"
)

const role = "go-chat-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		logger.NewLogger(role, os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.Log.Path, cfg.Log.Level)
	log.Info().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()).Msg("starting client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(serverAdapter)
	ui := tui.New(os.Stdin, os.Stdout)

	app, err := client.NewApp(services, localStorage, ui, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.App.QuickLogin() {
		if err = app.QuickLogin(ctx); err != nil {
			if ctx.Err() != nil {
				ui.Printer.Goodbye()
				return
			}
			log.Error().Err(err).Msg("quick login failed")
			stop()
			os.Exit(1)
		}
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
