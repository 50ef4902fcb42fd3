package http

import (
	"net/http"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/utils"
	"github.com/teller-rehab/teller-api/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appInfo := h.services.AppInfoService
	buildInfo := appInfo.GetBuildInfo(ctx)

	resp := models.VersionResponse{
		Title:       appInfo.GetAppTitle(ctx),
		Version:     appInfo.GetAppVersion(ctx),
		BuildDate:   buildInfo.BuildDate(),
		BuildCommit: buildInfo.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version response")
	}
}
