package http

//go:generate mockgen -source=interfaces.go -destination=../../mock/authenticator_mock.go -package=mock

import (
	"context"

	"github.com/quyetcv1/coffee-shop/models"
)

// Authenticator checks the raw "Authorization" header of a request against
// a required permission.
type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader, permission string) (models.Claims, error)
}
