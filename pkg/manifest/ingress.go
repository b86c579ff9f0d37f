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
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

// HasIngress reports whether the configuration asks for an Ingress.
func (c *Config) HasIngress() bool {
	return c.IngressHost != ""
}

// BuildIngress constructs the optional Ingress routing c.IngressHost to the
// Service. Returns nil when no ingress host is configured.
func BuildIngress(c *Config) *networkingv1.Ingress {
	if !c.HasIngress() {
		return nil
	}

	pathType := networkingv1.PathTypePrefix

	ing := &networkingv1.Ingress{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "networking.k8s.io/v1",
			Kind:       "Ingress",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      c.Name,
			Namespace: c.Namespace,
			Labels:    c.objectLabels(),
		},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{
				{
					Host: c.IngressHost,
					IngressRuleValue: networkingv1.IngressRuleValue{
						HTTP: &networkingv1.HTTPIngressRuleValue{
							Paths: []networkingv1.HTTPIngressPath{
								{
									Path:     "/",
									PathType: &pathType,
									Backend: networkingv1.IngressBackend{
										Service: &networkingv1.IngressServiceBackend{
											Name: c.Name,
											Port: networkingv1.ServiceBackendPort{
												Number: c.ServicePort,
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	if c.IngressClassName != "" {
		ing.Spec.IngressClassName = ptr.To(c.IngressClassName)
	}

	return ing
}
