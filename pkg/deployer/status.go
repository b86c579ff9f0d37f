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
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/hellokube/hellokube/pkg/errors"
)

// Status describes the observed state of a deployed hello responder.
type Status struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Image     string `json:"image" yaml:"image"`

	DesiredReplicas   int32 `json:"desiredReplicas" yaml:"desiredReplicas"`
	ReadyReplicas     int32 `json:"readyReplicas" yaml:"readyReplicas"`
	UpdatedReplicas   int32 `json:"updatedReplicas" yaml:"updatedReplicas"`
	AvailableReplicas int32 `json:"availableReplicas" yaml:"availableReplicas"`

	ServiceType string `json:"serviceType" yaml:"serviceType"`
	ClusterIP   string `json:"clusterIP,omitempty" yaml:"clusterIP,omitempty"`
	ExternalIP  string `json:"externalIP,omitempty" yaml:"externalIP,omitempty"`
	IngressHost string `json:"ingressHost,omitempty" yaml:"ingressHost,omitempty"`

	// Conditions holds human-readable deployment condition summaries,
	// e.g. "Available: True (MinimumReplicasAvailable)".
	Conditions []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// Ready reports whether all desired replicas are ready.
func (s *Status) Ready() bool {
	return s.DesiredReplicas > 0 && s.ReadyReplicas == s.DesiredReplicas
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// Status reports the current state of the named deployment, its service
// exposure, and the optional ingress host.
func (d *Deployer) Status(ctx context.Context) (*Status, error) {
	name := d.config.Name
	ns := d.config.Namespace

	dep, err := d.clientset.AppsV1().Deployments(ns).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, errors.NewWithContext(errors.ErrCodeNotFound,
				"deployment not found",
				map[string]any{"name": name, "namespace": ns})
		}
		return nil, errors.Wrap(errors.ErrCodeCluster, "failed to get Deployment", err)
	}

	status := &Status{
		Name:              name,
		Namespace:         ns,
		ReadyReplicas:     dep.Status.ReadyReplicas,
		UpdatedReplicas:   dep.Status.UpdatedReplicas,
		AvailableReplicas: dep.Status.AvailableReplicas,
		IngressHost:       d.config.IngressHost,
	}
	if dep.Spec.Replicas != nil {
		status.DesiredReplicas = *dep.Spec.Replicas
	}
	if containers := dep.Spec.Template.Spec.Containers; len(containers) > 0 {
		status.Image = containers[0].Image
	}

	for _, cond := range dep.Status.Conditions {
		status.Conditions = append(status.Conditions, fmt.Sprintf("%s: %s (%s)",
			titleCaser.String(string(cond.Type)), cond.Status, cond.Reason))
	}

	svc, err := d.clientset.CoreV1().Services(ns).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return nil, errors.Wrap(errors.ErrCodeCluster, "failed to get Service", err)
		}
		return status, nil
	}

	status.ServiceType = string(svc.Spec.Type)
	status.ClusterIP = svc.Spec.ClusterIP
	status.ExternalIP = externalAddress(svc)

	return status, nil
}

// externalAddress returns the service's external address, if any: load
// balancer ingress IPs or hostnames first, then any declared external IPs.
func externalAddress(svc *corev1.Service) string {
	var addrs []string
	for _, ing := range svc.Status.LoadBalancer.Ingress {
		if ing.IP != "" {
			addrs = append(addrs, ing.IP)
		} else if ing.Hostname != "" {
			addrs = append(addrs, ing.Hostname)
		}
	}
	addrs = append(addrs, svc.Spec.ExternalIPs...)
	return strings.Join(addrs, ",")
}
