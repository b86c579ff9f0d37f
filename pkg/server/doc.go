// Copyright (c) 2025, the HelloKube authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the HelloKube HTTP responder.
//
// The responder is a stateless HTTP server with a single functional route:
// every request to the root path is answered with HTTP 200 and a fixed
// plaintext greeting. Request concurrency is whatever net/http provides;
// there is no shared mutable state beyond the readiness flag.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking via X-Request-Id headers
//   - Panic recovery for resilience
//   - Prometheus RED metrics on /metrics
//   - Graceful shutdown handling with systemd readiness notification
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("hellod"),
//	    server.WithVersion(version),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # API Endpoints
//
// GET / - Fixed greeting
//
//	Always returns 200 OK with the body
//	"Hello World, from Dockers and Kubernetes!"
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server binds all interfaces on port 5000 by default. The PORT
// environment variable overrides the port, and SHUTDOWN_TIMEOUT_SECONDS
// overrides the graceful shutdown window to match the pod eviction grace
// period. A bind failure (port already in use, permission denied) is
// propagated to the caller, not handled.
package server
