// Package server runs the invitation HTTP server together with its
// background workers.
//
// It owns the process lifecycle: listening, signal handling, and graceful
// shutdown once a termination signal arrives or the serving context ends.
package server
