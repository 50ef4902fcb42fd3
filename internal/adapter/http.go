package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/teller-rehab/teller-api/internal/config"
	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/utils"
	"github.com/teller-rehab/teller-api/models"
)

const (
	rootPath          = "/"
	healthPath        = "/health"
	analyzeSpeechPath = "/api/analyze-speech"
	versionPath       = "/api/version"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates the base URL from cfg.Address and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid URL.
func NewHTTPAPIAdapter(cfg config.ProbeConfig, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIAdapter) Root(ctx context.Context) (models.RootResponse, error) {
	var root models.RootResponse
	if err := h.get(ctx, rootPath, &root); err != nil {
		return models.RootResponse{}, fmt.Errorf("root request: %w", err)
	}
	return root, nil
}

func (h *httpAPIAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	if err := h.get(ctx, healthPath, &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	return health, nil
}

func (h *httpAPIAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	if err := h.get(ctx, versionPath, &version); err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	return version, nil
}

// AnalyzeSpeech implements [APIAdapter]. It POSTs payload as JSON to
// POST /api/analyze-speech and decodes the analysis result.
func (h *httpAPIAdapter) AnalyzeSpeech(ctx context.Context, payload models.SpeechPayload) (models.SpeechAnalysis, error) {
	if payload == nil {
		payload = models.SpeechPayload{}
	}

	var analysis models.SpeechAnalysis
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&analysis).
		Post(analyzeSpeechPath)
	if err != nil {
		return models.SpeechAnalysis{}, fmt.Errorf("analyze speech request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SpeechAnalysis{}, fmt.Errorf("analyze speech request: %w", err)
	}

	h.logger.Debug().Str("result", analysis.Result).Msg("speech analyzed")
	return analysis, nil
}

func (h *httpAPIAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("API request finished")
	return nil
}
