package server

import "context"

// Server defines the lifecycle contract of the process' transport server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received and then
	// shuts down gracefully.
	RunServer()

	// Run serves until ctx is done. It returns the first error that stopped
	// serving, or nil after a clean shutdown.
	Run(ctx context.Context) error
}
