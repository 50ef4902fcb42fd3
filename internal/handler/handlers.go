package handler

import (
	"github.com/teller-rehab/teller-api/internal/config"
	"github.com/teller-rehab/teller-api/internal/handler/grpc"
	"github.com/teller-rehab/teller-api/internal/handler/http"
	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/service"
)

// Handlers holds the transport front-ends of the API. A nil field means the
// transport has no listen address configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a front-end for every transport that has a listen
// address in cfg. At least one address is required.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("handlers created")

	return handlers, nil
}
