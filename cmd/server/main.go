package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/handler"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/server"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/internal/store"
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

	log := logger.NewLogger("fin-simulator-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
