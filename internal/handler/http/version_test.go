package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/mock"
	"github.com/teller-rehab/teller-api/internal/service"
	"github.com/teller-rehab/teller-api/models"
	"go.uber.org/mock/gomock"
)

// newHandlerWithAppInfo builds a Handler whose AppInfoService is the given
// mock. Other services are left nil because the version route does not use
// them.
func newHandlerWithAppInfo(appInfo service.AppInfoService) *Handler {
	return &Handler{
		services: &service.Services{AppInfoService: appInfo},
		logger:   logger.Nop(),
	}
}

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildInfo models.AppBuildInfo
		wantBody  string
	}{
		{
			name:      "injected build metadata",
			version:   "2.0.0",
			buildInfo: models.NewAppBuildInfo("2.0.0", "2026-10-19T10:00:00Z", "f00dbabe"),
			wantBody:  `{"title":"Teller Rehab API","version":"2.0.0","build_date":"2026-10-19T10:00:00Z","build_commit":"f00dbabe"}`,
		},
		{
			name:      "missing build metadata",
			version:   "dev",
			buildInfo: models.NewAppBuildInfo("", "", ""),
			wantBody:  `{"title":"Teller Rehab API","version":"dev","build_date":"N/A","build_commit":"N/A"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			appInfo := mock.NewMockAppInfoService(ctrl)
			appInfo.EXPECT().GetAppTitle(gomock.Any()).Return(service.AppTitle)
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)
			appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(tt.buildInfo)

			h := newHandlerWithAppInfo(appInfo)
			rr := httptest.NewRecorder()
			h.getServerVersion(rr, httptest.NewRequest(http.MethodGet, versionPath, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
