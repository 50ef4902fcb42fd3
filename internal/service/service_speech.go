package service

import (
	"context"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/models"
)

// SpeechAnalysisResult is returned for every accepted payload until a real
// analyzer is plugged in.
const SpeechAnalysisResult = "Speech analysis result"

type speechService struct {
	logger *logger.Logger
}

// NewSpeechService returns the placeholder analyzer. It accepts any payload
// and always reports [SpeechAnalysisResult]; the payload is not inspected.
func NewSpeechService(logger *logger.Logger) SpeechService {
	return &speechService{logger: logger}
}

func (s *speechService) AnalyzeSpeech(ctx context.Context, payload models.SpeechPayload) (models.SpeechAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return models.SpeechAnalysis{}, err
	}

	if payload == nil {
		return models.SpeechAnalysis{}, ErrNoSpeechPayloadProvided
	}

	return models.SpeechAnalysis{Result: SpeechAnalysisResult}, nil
}
