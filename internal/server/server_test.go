package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teller-rehab/teller-api/internal/config"
	"github.com/teller-rehab/teller-api/internal/handler"
	myGRPC "github.com/teller-rehab/teller-api/internal/handler/grpc"
	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/service"
	"github.com/teller-rehab/teller-api/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// freeAddress reserves an ephemeral loopback port and releases it so the
// server under test can bind it.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	services, err := service.NewServices(
		config.StructuredConfig{App: config.App{Version: "test"}, Server: cfg},
		models.NewAppBuildInfo("test", "", ""),
		logger.Nop(),
	)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_AddressWithoutHandler(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_BothTransports(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	srv, ok := s.(*server)
	require.True(t, ok)
	assert.NotNil(t, srv.httpServer)
	assert.NotNil(t, srv.gRPCServer)
	assert.Equal(t, time.Second, srv.shutdownTimeout)
}

// ─────────────────────────────────────────────
// RunServer
// ─────────────────────────────────────────────

// TestRunServer_ServesUntilCancelled verifies that both transports answer
// while running and that cancelling the context stops them cleanly.
func TestRunServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     freeAddress(t),
		GRPCAddress:     freeAddress(t),
		ShutdownTimeout: 5 * time.Second,
	}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	healthURL := "http://" + cfg.HTTPAddress + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(cfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer checkCancel()
	resp, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	require.NoError(t, conn.Close())

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}

	_, err = http.Get(healthURL)
	assert.Error(t, err, "HTTP server must not accept connections after shutdown")
}

func TestRunServer_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := config.Server{HTTPAddress: occupied.Addr().String()}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}

// TestRunServer_GRPCAddressInUse verifies that the HTTP listener is released
// when the gRPC listener cannot be bound.
func TestRunServer_GRPCAddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := config.Server{
		HTTPAddress: freeAddress(t),
		GRPCAddress: occupied.Addr().String(),
	}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	require.Error(t, s.RunServer(context.Background()))

	l, err := net.Listen("tcp", cfg.HTTPAddress)
	require.NoError(t, err, "HTTP address must be free again")
	_ = l.Close()
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
