package service

import (
	"fmt"

	"github.com/teller-rehab/teller-api/internal/config"
	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/models"
)

type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
	SpeechService  SpeechService
}

func NewServices(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	speechService := NewSpeechLoggingService(logger).Wrap(NewSpeechService(logger))

	return &Services{
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(),
		SpeechService:  speechService,
	}, nil
}
