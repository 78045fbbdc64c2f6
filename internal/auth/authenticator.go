package auth

import (
	"context"

	"github.com/quyetcv1/coffee-shop/models"
)

// Authenticator runs the full request check: header parsing, token
// verification and the permission check.
type Authenticator struct {
	verifier *Verifier
}

// NewAuthenticator returns an Authenticator backed by verifier.
func NewAuthenticator(verifier *Verifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

// Authenticate validates the raw "Authorization" header value and returns
// the caller's claims when they grant permission.
func (a *Authenticator) Authenticate(ctx context.Context, authorizationHeader, permission string) (models.Claims, error) {
	token, err := TokenFromHeader(authorizationHeader)
	if err != nil {
		return models.Claims{}, err
	}

	claims, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return models.Claims{}, err
	}

	if err = CheckPermissions(permission, claims); err != nil {
		return models.Claims{}, err
	}

	return claims, nil
}
