package http

import (
	"net/http"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/utils"
	"github.com/teller-rehab/teller-api/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	title := h.services.AppInfoService.GetAppTitle(r.Context())

	if _, err := utils.WriteJSON(w, models.RootResponse{Message: title}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing root response")
	}
}
