package http

import (
	"net/http"
)

const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "GET, PUT, POST, PATCH, DELETE, OPTIONS"
)

// withCORS lets the front-end, served from the origin of the Auth0 callback
// URL, call the API from the browser. Other origins get no CORS headers.
// Preflight requests are answered here and never reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowedOrigin := h.profile.CallbackOrigin()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")

		origin := r.Header.Get("Origin")
		if origin != "" && origin == allowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
