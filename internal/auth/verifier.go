package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quyetcv1/coffee-shop/internal/config"
	"github.com/quyetcv1/coffee-shop/models"
)

// Verifier validates access tokens against the tenant of a profile.
type Verifier struct {
	keys   KeyProvider
	parser *jwt.Parser
}

// NewVerifier returns a Verifier accepting tokens signed with one of
// cfg.Algorithms by a key from keys, issued by the profile's tenant for the
// profile's audience, and carrying an expiry.
func NewVerifier(keys KeyProvider, profile config.Profile, cfg config.Auth) *Verifier {
	return &Verifier{
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods(cfg.Algorithms),
			jwt.WithAudience(profile.Auth0.Audience),
			jwt.WithIssuer(profile.IssuerURL()),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify checks tokenString and returns its claims.
//
// Errors are [*Error] values: [ErrMissingKeyID], [ErrKeyNotFound],
// [ErrTokenExpired], [ErrInvalidClaims], [ErrKeySetUnavailable] or
// [ErrUnparsableToken] for anything else.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	// the header is checked before the signing method, so a token without a
	// key ID is rejected as such whatever its algorithm
	unverified, _, err := v.parser.ParseUnverified(tokenString, &models.Claims{})
	if err != nil {
		return models.Claims{}, classify(err)
	}

	kid, ok := unverified.Header["kid"].(string)
	if !ok || kid == "" {
		return models.Claims{}, ErrMissingKeyID
	}

	var claims models.Claims
	_, err = v.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return models.Claims{}, classify(err)
	}

	return claims, nil
}

func classify(err error) error {
	var authErr *Error
	switch {
	case errors.As(err, &authErr):
		return err
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrInvalidClaims
	default:
		return fmt.Errorf("%w: %w", ErrUnparsableToken, err)
	}
}
