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
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/hellokube/hellokube/pkg/defaults"
	"github.com/hellokube/hellokube/pkg/errors"
)

// WaitForRollout blocks until all desired replicas of the Deployment are
// ready and up to date, the timeout elapses, or the context is canceled.
// A ReplicaFailure condition aborts the wait immediately.
func (d *Deployer) WaitForRollout(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaults.K8sRolloutTimeout
	}

	err := wait.PollUntilContextTimeout(ctx, defaults.K8sRolloutPollInterval, timeout, true,
		func(ctx context.Context) (bool, error) {
			dep, err := d.clientset.AppsV1().Deployments(d.config.Namespace).Get(
				ctx, d.config.Name, metav1.GetOptions{})
			if err != nil {
				return false, err
			}

			for _, cond := range dep.Status.Conditions {
				if cond.Type == appsv1.DeploymentReplicaFailure && cond.Status == corev1.ConditionTrue {
					return false, fmt.Errorf("replica failure: %s", cond.Message)
				}
			}

			desired := int32(1)
			if dep.Spec.Replicas != nil {
				desired = *dep.Spec.Replicas
			}

			done := dep.Status.ObservedGeneration >= dep.Generation &&
				dep.Status.UpdatedReplicas == desired &&
				dep.Status.ReadyReplicas == desired
			return done, nil
		},
	)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeTimeout,
			"waiting for rollout", err,
			map[string]any{
				"name":      d.config.Name,
				"namespace": d.config.Namespace,
				"timeout":   timeout.String(),
			})
	}

	return nil
}
