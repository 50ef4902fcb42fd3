// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Teller Rehab Authors

package http

import "errors"

var (
	// ErrBodyIsNotJSONObject is returned when a request body that must hold a
	// single JSON object is empty, malformed, or holds any other JSON value.
	ErrBodyIsNotJSONObject = errors.New("request body must be a JSON object")

	// ErrRequestBodyTooLarge is returned when a request body exceeds the
	// size accepted by the route.
	ErrRequestBodyTooLarge = errors.New("request body is too large")
)
