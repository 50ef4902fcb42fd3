package service

import (
	"context"

	"github.com/teller-rehab/teller-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports static information about the running service.
type AppInfoService interface {
	// GetAppTitle returns the human-readable service title.
	GetAppTitle(ctx context.Context) string
	// GetAppVersion returns the configured application version.
	GetAppVersion(ctx context.Context) string
	// GetBuildInfo returns linker-injected build metadata.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the service can accept requests.
type HealthService interface {
	GetHealth(ctx context.Context) models.HealthResponse
}

// SpeechService analyzes speech payloads submitted by clients.
type SpeechService interface {
	AnalyzeSpeech(ctx context.Context, payload models.SpeechPayload) (models.SpeechAnalysis, error)
}

// SpeechServiceWrapper defines middleware composition for SpeechService.
// Implementations wrap an existing SpeechService to add behavior such as
// logging.
type SpeechServiceWrapper interface {
	Wrap(SpeechService) SpeechService // returns a decorated SpeechService applying additional behavior
}
