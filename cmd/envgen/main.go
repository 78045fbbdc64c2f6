// Command envgen writes the front-end environment module for the selected
// profile to stdout:
//
//	PROFILE=production AUTH0_URL=... envgen > src/environments/environment.prod.ts
//
// It reads the same flags, environment variables and config file as the
// server and exits non-zero when the profile is invalid.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/quyetcv1/coffee-shop/internal/config"
	"github.com/quyetcv1/coffee-shop/internal/envfile"
	"github.com/quyetcv1/coffee-shop/internal/logger"
)

func main() {
	log := logger.NewStderrLogger("coffee-shop-envgen")

	cfg, err := config.GetConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = envfile.Render(os.Stdout, cfg.Profile); err != nil {
		log.Fatal().Err(err).Msg("error writing environment module")
	}

	log.ForProfile(cfg.Profile.Name, cfg.Profile.Production).Info().Msg("environment module written")
}
