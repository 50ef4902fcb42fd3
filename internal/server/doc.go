// Package server runs the Teller Rehab API transports.
//
// The HTTP server is always configured. The gRPC health server is started
// only when a gRPC address is set. Both stop together on SIGTERM, SIGINT,
// SIGQUIT or context cancellation, bounded by the shutdown timeout.
package server
