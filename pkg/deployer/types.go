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

package deployer

import (
	"k8s.io/client-go/kubernetes"

	"github.com/hellokube/hellokube/pkg/manifest"
)

// Deployer manages the lifecycle of the hello responder on a Kubernetes
// cluster: creating or updating the Deployment, Service, and optional
// Ingress, waiting for the rollout, reporting status, and removal.
type Deployer struct {
	clientset kubernetes.Interface
	config    *manifest.Config
}

// New creates a Deployer for the given cluster and deployment configuration.
func New(clientset kubernetes.Interface, config *manifest.Config) *Deployer {
	return &Deployer{
		clientset: clientset,
		config:    config,
	}
}

// RemoveOptions controls what Remove deletes.
type RemoveOptions struct {
	// KeepService leaves the Service in place, useful when an external
	// load balancer address should survive a redeploy.
	KeepService bool
}
