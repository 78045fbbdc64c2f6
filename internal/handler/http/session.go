package http

import (
	"net/http"

	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/internal/utils"
)

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("no claims in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, claims.Session()); err != nil {
		log.Err(err).Msg("error writing session")
	}
}
