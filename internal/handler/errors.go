// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Teller Rehab Authors

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration names neither an HTTP nor a gRPC address.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// errNoServicesProvided is returned by NewHandlers when it is given a nil
// service container.
var errNoServicesProvided = errors.New("no services provided")
