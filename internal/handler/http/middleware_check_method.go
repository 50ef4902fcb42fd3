// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Teller Rehab Authors

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// methodNotAllowed returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It responds with HTTP 405 and a JSON detail, and sets the Allow header to
// the methods registered for the requested path. The lookup walks the route
// tree of router, descending into mounted sub-routers, and compares each
// pattern against the raw request path. Only exact pattern matches are
// considered.
func (h *Handler) methodNotAllowed(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, "", r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeDetail(w, r, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func allowedMethods(routes chi.Routes, prefix, path string) []string {
	for _, route := range routes.Routes() {
		if route.SubRoutes != nil {
			subPrefix := prefix + strings.TrimSuffix(route.Pattern, "/*")
			if methods := allowedMethods(route.SubRoutes, subPrefix, path); len(methods) > 0 {
				return methods
			}
			continue
		}

		if prefix+route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}

	return nil
}
