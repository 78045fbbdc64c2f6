package http

import (
	"time"

	"github.com/quyetcv1/coffee-shop/internal/config"
	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/models"
)

type Handler struct {
	profile       config.Profile
	authenticator Authenticator
	buildInfo     models.AppBuildInfo

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(profile config.Profile, authenticator Authenticator, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		profile:        profile,
		authenticator:  authenticator,
		buildInfo:      buildInfo,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
