package http

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/quyetcv1/coffee-shop/internal/config"
	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/internal/mock"
	"github.com/quyetcv1/coffee-shop/models"
)

// ---- Helpers ----

const testOrigin = "http://localhost:8100"

func testProfile() config.Profile {
	return config.Profile{
		Name:         config.ProfileDevelopment,
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: config.Auth0Profile{
			URL:         "quyetcv1.us",
			Domain:      "quyetcv1.us.auth0.com",
			Audience:    "http://localhost:5000/login",
			ClientID:    "RuVMLJ4yAdlrn2sYX6rjbJQQXaRo6UfI",
			CallbackURL: testOrigin,
		},
	}
}

func newTestHandlerWithAuth(t *testing.T, a Authenticator) *Handler {
	t.Helper()
	return NewHandler(
		testProfile(),
		a,
		models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"),
		config.Server{RequestTimeout: 5 * time.Second},
		logger.Nop(),
	)
}

// newTestRouter returns the routed handler and the authenticator mock behind
// it. The mock fails the test on any call that was not expected.
func newTestRouter(t *testing.T) (http.Handler, *mock.MockAuthenticator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAuth := mock.NewMockAuthenticator(ctrl)
	return newTestHandlerWithAuth(t, mockAuth).Init(), mockAuth
}

func newTestHandler() *Handler {
	return &Handler{profile: testProfile(), logger: logger.Nop()}
}
