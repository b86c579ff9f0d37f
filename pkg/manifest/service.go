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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// BuildService constructs the Service exposing the Deployment's pods on
// c.ServicePort, forwarding to the named container port.
func BuildService(c *Config) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      c.Name,
			Namespace: c.Namespace,
			Labels:    c.objectLabels(),
		},
		Spec: corev1.ServiceSpec{
			Type:     c.ServiceType,
			Selector: c.selectorLabels(),
			Ports: []corev1.ServicePort{
				{
					Name:       portName,
					Port:       c.ServicePort,
					TargetPort: intstr.FromString(portName),
					Protocol:   corev1.ProtocolTCP,
				},
			},
		},
	}
}
