package server

import "context"

// Server defines the lifecycle contract for the set of transport servers
// managed by this package.
type Server interface {
	// RunServer binds every configured listener, serves requests and blocks
	// until ctx is cancelled, a termination signal arrives or a server fails.
	// All servers are shut down gracefully before it returns.
	RunServer(ctx context.Context) error
}
