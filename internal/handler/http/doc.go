// Package http implements the HTTP transport layer of the Teller Rehab API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, panic recovery, the
// cross-origin policy, request timeouts and response compression are handled
// in this package before requests are delegated to the service layer.
package http
