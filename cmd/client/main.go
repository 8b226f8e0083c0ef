package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-simulator/internal/adapter"
	"github.com/MKhiriev/go-fin-simulator/internal/client"
	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/internal/session"
	"github.com/MKhiriev/go-fin-simulator/internal/store"
	"github.com/MKhiriev/go-fin-simulator/internal/tui"
	"github.com/MKhiriev/go-fin-simulator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("fin-simulator-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	sess := session.New(localStorage.CredentialStore, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(sess, serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
