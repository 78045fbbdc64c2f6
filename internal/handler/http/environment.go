package http

import (
	"net/http"

	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/internal/utils"
)

// getEnvironment serves the active profile in the form the front-end reads
// at startup.
func (h *Handler) getEnvironment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if err := utils.WriteJSON(w, http.StatusOK, h.profile); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing environment")
	}
}
