package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/models"
)

type SpeechLoggingService struct {
	inner  SpeechService
	logger *logger.Logger
}

// NewSpeechLoggingService returns a wrapper that logs every analysis call
// with the request-scoped logger when one is present in the context, and
// with fallback otherwise.
func NewSpeechLoggingService(fallback *logger.Logger) SpeechServiceWrapper {
	return &SpeechLoggingService{logger: fallback}
}

func (s *SpeechLoggingService) Wrap(inner SpeechService) SpeechService {
	s.inner = inner
	return s
}

func (s *SpeechLoggingService) AnalyzeSpeech(ctx context.Context, payload models.SpeechPayload) (models.SpeechAnalysis, error) {
	log := s.loggerFor(ctx)
	start := time.Now()

	analysis, err := s.inner.AnalyzeSpeech(ctx, payload)
	if err != nil {
		log.Err(err).Int("payload_keys", len(payload)).Msg("speech analysis failed")
		return analysis, err
	}

	log.Debug().
		Int("payload_keys", len(payload)).
		Dur("duration", time.Since(start)).
		Msg("speech analysis finished")

	return analysis, nil
}

func (s *SpeechLoggingService) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
