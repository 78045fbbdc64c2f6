package handler

import (
	"github.com/quyetcv1/coffee-shop/internal/config"
	"github.com/quyetcv1/coffee-shop/internal/handler/http"
	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(cfg *config.Config, authenticator http.Authenticator, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if authenticator == nil {
		return nil, errNoAuthenticator
	}

	return &Handlers{
		HTTP: http.NewHandler(cfg.Profile, authenticator, buildInfo, cfg.Server, logger),
	}, nil
}
