// Package grpc exposes the service over gRPC. Only the standard
// grpc.health.v1 protocol is served.
package grpc

import (
	"context"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC service name whose health is reported alongside
// the server-wide empty name.
const ServiceName = "teller.rehab.api"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose statuses mirror [service.HealthService].
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health answers grpc.health.v1 Check and Watch calls.
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s and publishes the current
// health of the application.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
	h.Refresh(context.Background())
}

// Refresh queries the health service and updates both reported statuses.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services.HealthService.GetHealth(ctx).Status == service.StatusHealthy {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status updated")
}

// Shutdown marks every service as NOT_SERVING. Later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
