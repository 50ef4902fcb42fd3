// Command probe checks a running Teller Rehab API and exits with status 0
// when it reports itself healthy, 1 otherwise. It is meant for container
// health checks.
package main

import (
	"context"
	"os"

	"github.com/teller-rehab/teller-api/internal/adapter"
	"github.com/teller-rehab/teller-api/internal/config"
	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/service"
)

const (
	exitHealthy   = 0
	exitUnhealthy = 1
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], logger.NewLogger("probe")))
}

func run(ctx context.Context, args []string, log *logger.Logger) int {
	cfg, err := config.GetProbeConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting probe configs")
		return exitUnhealthy
	}

	api, err := adapter.NewHTTPAPIAdapter(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating API adapter")
		return exitUnhealthy
	}

	health, err := api.Health(ctx)
	if err != nil {
		log.Error().Err(err).Str("address", cfg.Address).Msg("health check failed")
		return exitUnhealthy
	}
	if health.Status != service.StatusHealthy {
		log.Error().Str("status", health.Status).Msg("API reported unhealthy status")
		return exitUnhealthy
	}

	if cfg.AnalyzeSpeech {
		analysis, err := api.AnalyzeSpeech(ctx, nil)
		if err != nil {
			log.Error().Err(err).Msg("speech analysis check failed")
			return exitUnhealthy
		}
		log.Info().Str("result", analysis.Result).Msg("speech analysis check passed")
	}

	log.Info().Str("address", cfg.Address).Msg("API is healthy")
	return exitHealthy
}
