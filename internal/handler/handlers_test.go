package handler

import (
	"bytes"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/teller-rehab/teller-api/internal/config"
	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns a service container with only the health service
// set. Constructors store the pointer without calling into it.
func newTestServices() *service.Services {
	return &service.Services{HealthService: service.NewHealthService()}
}

// TestNewHandlers_BothAddresses verifies that when both HTTPAddress and
// GRPCAddress are configured, both handlers are initialised and no error is
// returned.
func TestNewHandlers_BothAddresses(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "0.0.0.0:8000",
		GRPCAddress:    "0.0.0.0:9000",
		RequestTimeout: 30 * time.Second,
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.GRPC, "expected gRPC handler to be initialised")
}

// TestNewHandlers_OnlyHTTP verifies that when only HTTPAddress is configured,
// the HTTP handler is initialised and the gRPC handler remains nil.
func TestNewHandlers_OnlyHTTP(t *testing.T) {
	cfg := config.Server{
		HTTPAddress: "0.0.0.0:8000",
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.Nil(t, h.GRPC, "expected gRPC handler to be nil")
}

// TestNewHandlers_OnlyGRPC verifies that when only GRPCAddress is configured,
// the gRPC handler is initialised and the HTTP handler remains nil.
func TestNewHandlers_OnlyGRPC(t *testing.T) {
	cfg := config.Server{
		GRPCAddress: "0.0.0.0:9000",
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Nil(t, h.HTTP, "expected HTTP handler to be nil")
	assert.NotNil(t, h.GRPC, "expected gRPC handler to be initialised")
}

// TestNewHandlers_NoAddresses verifies that when neither HTTPAddress nor
// GRPCAddress is configured, NewHandlers returns errNoHandlersAreCreated and
// a nil *Handlers.
func TestNewHandlers_NoAddresses(t *testing.T) {
	cfg := config.Server{}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_HTTPRouterServes verifies that the HTTP handler produced
// here is wired to the given services.
func TestNewHandlers_HTTPRouterServes(t *testing.T) {
	cfg := config.Server{HTTPAddress: "0.0.0.0:8000"}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))

	assert.Equal(t, stdhttp.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: "0.0.0.0:8000", GRPCAddress: "0.0.0.0:9000"}

	h1, err1 := NewHandlers(newTestServices(), cfg, newTestLogger())
	h2, err2 := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}

// TestNewHandlers_NilServices verifies that a nil service container is
// rejected before any transport is built.
func TestNewHandlers_NilServices(t *testing.T) {
	cfg := config.Server{HTTPAddress: "0.0.0.0:8000", GRPCAddress: "0.0.0.0:9000"}

	h, err := NewHandlers(nil, cfg, newTestLogger())

	require.ErrorIs(t, err, errNoServicesProvided)
	assert.Nil(t, h)
}

// TestNewHandlers_LogsEnabledTransports verifies that the created transports
// are reported in the log.
func TestNewHandlers_LogsEnabledTransports(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	cfg := config.Server{HTTPAddress: "0.0.0.0:8000"}

	_, err := NewHandlers(newTestServices(), cfg, log)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"message":"handlers created"`)
	assert.Contains(t, buf.String(), `"http":true`)
	assert.Contains(t, buf.String(), `"grpc":false`)
}
