package http

import (
	"net/http"

	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/internal/utils"
)

// RequireAuth returns a middleware that admits a request only when its
// bearer token is valid and grants permission. An empty permission admits
// any valid token.
//
// On success the verified claims are stored in the request context (see
// [utils.GetClaimsFromContext]). Rejections are written by [writeError] with
// the status code carried by the authentication error.
func (h *Handler) RequireAuth(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			claims, err := h.authenticator.Authenticate(ctx, r.Header.Get("Authorization"), permission)
			if err != nil {
				log.Err(err).Str("permission", permission).Msg("request rejected")
				if writeErr := writeError(w, err); writeErr != nil {
					log.Err(writeErr).Msg("error writing error response")
				}
				return
			}

			log.Debug().Str("sub", claims.Subject).Msg("request authenticated")

			next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
		})
	}
}
