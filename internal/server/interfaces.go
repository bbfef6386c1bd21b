package server

// Server is the lifecycle contract of the service's transport.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
