package http

import (
	"net/http"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.GetHealth(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
