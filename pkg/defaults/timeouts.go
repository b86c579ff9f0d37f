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

package defaults

import "time"

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Kubernetes timeouts for K8s API operations.
const (
	// K8sAPITimeout is the timeout for individual K8s API calls.
	K8sAPITimeout = 30 * time.Second

	// K8sRolloutTimeout is the default timeout for waiting on a Deployment
	// rollout to reach its desired replica count.
	K8sRolloutTimeout = 2 * time.Minute

	// K8sRolloutPollInterval is the interval between rollout status checks.
	K8sRolloutPollInterval = 2 * time.Second

	// K8sCleanupTimeout is the timeout for cleanup operations.
	K8sCleanupTimeout = 30 * time.Second
)

// Registry timeouts for OCI operations.
const (
	// RegistryPushTimeout is the default timeout for pushing a rendered
	// manifest artifact to an OCI registry.
	RegistryPushTimeout = 2 * time.Minute
)
