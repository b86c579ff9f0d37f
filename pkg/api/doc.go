// Package api provides the HTTP entry point for the HelloKube responder.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring logging and signal handling before handing the lifecycle over
// to the server.
//
// # Usage
//
// To start the responder:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/hellokube/hellokube/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET / - Fixed greeting
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 5000)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hellokube/hellokube/pkg/api.version=1.0.0'"
package api
