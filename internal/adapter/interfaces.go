// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Teller Rehab Authors

// Package adapter provides a client for the Teller Rehab API.
//
// The primary abstraction is [APIAdapter], which decouples callers such as
// the health probe from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPAPIAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnprocessableEntity] for 422).
package adapter

import (
	"context"

	"github.com/teller-rehab/teller-api/models"
)

// APIAdapter defines transport-agnostic communication with the Teller Rehab
// API. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type APIAdapter interface {
	// Root calls GET / and returns the greeting.
	Root(ctx context.Context) (models.RootResponse, error)

	// Health calls GET /health and returns the reported status.
	Health(ctx context.Context) (models.HealthResponse, error)

	// AnalyzeSpeech submits payload to POST /api/analyze-speech. A nil
	// payload is sent as an empty JSON object.
	AnalyzeSpeech(ctx context.Context, payload models.SpeechPayload) (models.SpeechAnalysis, error)

	// Version calls GET /api/version and returns build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)
}
