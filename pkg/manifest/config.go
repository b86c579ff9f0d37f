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

package manifest

import (
	"fmt"

	"github.com/distribution/reference"
	corev1 "k8s.io/api/core/v1"

	"github.com/hellokube/hellokube/pkg/errors"
	"github.com/hellokube/hellokube/pkg/server"
)

// Defaults for the deployment descriptor. The container port must match the
// port the responder binds (pkg/server.DefaultPort).
const (
	DefaultName      = "hello"
	DefaultNamespace = "default"
	DefaultImage     = "ghcr.io/hellokube/hellod:latest"
	DefaultReplicas  = int32(3)

	DefaultContainerPort = int32(server.DefaultPort)
	DefaultServicePort   = int32(80)

	// portName ties the Service target port to the container port by name,
	// so the two cannot drift apart in the rendered objects.
	portName = "http"
)

// managedByLabelValue identifies objects created by this tool.
const managedByLabelValue = "hellokube"

// Config describes the desired deployment shape: how many replicas of the
// responder image to run and how the replicas are exposed.
type Config struct {
	// Name is used for the Deployment, Service, and Ingress object names
	// and as the app label tying them together.
	Name string `json:"name" yaml:"name"`

	// Namespace is the target Kubernetes namespace.
	Namespace string `json:"namespace" yaml:"namespace"`

	// Image is the responder container image reference.
	Image string `json:"image" yaml:"image"`

	// Replicas is the desired number of running instances. Must be >= 1.
	Replicas int32 `json:"replicas" yaml:"replicas"`

	// ContainerPort is the port the responder binds inside the container.
	ContainerPort int32 `json:"containerPort" yaml:"containerPort"`

	// ServicePort is the externally exposed port mapped to ContainerPort.
	ServicePort int32 `json:"servicePort" yaml:"servicePort"`

	// ServiceType is the Service exposure mode (ClusterIP, NodePort,
	// LoadBalancer).
	ServiceType corev1.ServiceType `json:"serviceType" yaml:"serviceType"`

	// IngressHost, when set, adds an Ingress routing the host to the Service.
	IngressHost string `json:"ingressHost,omitempty" yaml:"ingressHost,omitempty"`

	// IngressClassName optionally selects the ingress controller.
	IngressClassName string `json:"ingressClassName,omitempty" yaml:"ingressClassName,omitempty"`
}

// NewConfig returns a Config with the tutorial defaults: 3 replicas of the
// responder image, container port 5000, exposed on port 80.
func NewConfig() *Config {
	return &Config{
		Name:          DefaultName,
		Namespace:     DefaultNamespace,
		Image:         DefaultImage,
		Replicas:      DefaultReplicas,
		ContainerPort: DefaultContainerPort,
		ServicePort:   DefaultServicePort,
		ServiceType:   corev1.ServiceTypeLoadBalancer,
	}
}

// Validate checks the configuration invariants. It returns a structured
// error describing the first violation found.
func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "name is required")
	}
	if c.Namespace == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "namespace is required")
	}
	if c.Replicas < 1 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"replica count must be a positive integer",
			map[string]any{"replicas": c.Replicas})
	}
	if err := validatePort(c.ContainerPort); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, "invalid container port", err)
	}
	if err := validatePort(c.ServicePort); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, "invalid service port", err)
	}
	if _, err := reference.ParseNormalizedNamed(c.Image); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidConfig,
			"invalid image reference", err,
			map[string]any{"image": c.Image})
	}

	switch c.ServiceType {
	case corev1.ServiceTypeClusterIP, corev1.ServiceTypeNodePort, corev1.ServiceTypeLoadBalancer:
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"unsupported service type",
			map[string]any{"serviceType": c.ServiceType})
	}

	return nil
}

func validatePort(port int32) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", port)
	}
	return nil
}

// selectorLabels returns the labels that tie the Service to the Deployment's
// pods. The same map is used for the pod template and the Service selector,
// which keeps the label-selector invariant true by construction.
func (c *Config) selectorLabels() map[string]string {
	return map[string]string{
		"app.kubernetes.io/name": c.Name,
	}
}

// objectLabels returns the full label set applied to managed objects.
func (c *Config) objectLabels() map[string]string {
	labels := c.selectorLabels()
	labels["app.kubernetes.io/managed-by"] = managedByLabelValue
	return labels
}
