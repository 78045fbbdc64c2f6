package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/quyetcv1/coffee-shop/internal/auth"
	"github.com/quyetcv1/coffee-shop/internal/config"
	"github.com/quyetcv1/coffee-shop/internal/handler"
	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/internal/server"
	"github.com/quyetcv1/coffee-shop/internal/utils"
	"github.com/quyetcv1/coffee-shop/internal/workers"
	"github.com/quyetcv1/coffee-shop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("coffee-shop-server")
	cfg, err := config.GetConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.ForProfile(cfg.Profile.Name, cfg.Profile.Production)
	log.Debug().Any("config", cfg).Msg("received configs")

	keySet := auth.NewKeySet(cfg.Profile.JWKSURL(), utils.NewHTTPClient(cfg.Auth.JWKSTimeout), cfg.Auth.JWKSCacheTTL)
	authenticator := auth.NewAuthenticator(auth.NewVerifier(keySet, cfg.Profile, cfg.Auth))

	handlers, err := handler.NewHandlers(cfg, authenticator, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	go workers.NewWorkers(
		workers.NewKeySetRefresher(keySet, cfg.Auth.JWKSCacheTTL, log),
	).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
