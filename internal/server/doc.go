// Package server runs the HTTP server of the accounts service.
//
// It owns the server lifecycle: startup, stop signals and graceful shutdown.
package server
