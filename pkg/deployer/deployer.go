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
	"log/slog"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/hellokube/hellokube/pkg/errors"
	"github.com/hellokube/hellokube/pkg/manifest"
	"github.com/hellokube/hellokube/pkg/version"
)

// ingressV1MinVersion is the first Kubernetes release serving
// networking.k8s.io/v1 Ingress.
var ingressV1MinVersion = version.MustParseVersion("1.19.0")

// Deploy creates or updates the Deployment, Service, and optional Ingress
// described by the configuration. The operation is idempotent: existing
// resources are updated in place.
func (d *Deployer) Deploy(ctx context.Context) error {
	if err := d.config.Validate(); err != nil {
		return err
	}

	if err := d.ensureDeployment(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeCluster, "failed to ensure Deployment", err)
	}

	if err := d.ensureService(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeCluster, "failed to ensure Service", err)
	}

	if d.config.HasIngress() {
		ok, err := d.ingressSupported()
		if err != nil {
			return errors.Wrap(errors.ErrCodeCluster, "failed to check ingress support", err)
		}
		if !ok {
			return errors.NewWithContext(errors.ErrCodeCluster,
				"cluster does not serve networking.k8s.io/v1 Ingress",
				map[string]any{"minVersion": ingressV1MinVersion.String()})
		}
		if err := d.ensureIngress(ctx); err != nil {
			return errors.Wrap(errors.ErrCodeCluster, "failed to ensure Ingress", err)
		}
	}

	slog.Info("deployed",
		"name", d.config.Name,
		"namespace", d.config.Namespace,
		"replicas", d.config.Replicas,
		"ingress", d.config.HasIngress(),
	)

	return nil
}

func (d *Deployer) ensureDeployment(ctx context.Context) error {
	desired := manifest.BuildDeployment(d.config)
	client := d.clientset.AppsV1().Deployments(d.config.Namespace)

	_, err := client.Create(ctx, desired, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		_, err = client.Update(ctx, desired, metav1.UpdateOptions{})
	}
	return err
}

func (d *Deployer) ensureService(ctx context.Context) error {
	desired := manifest.BuildService(d.config)
	client := d.clientset.CoreV1().Services(d.config.Namespace)

	_, err := client.Create(ctx, desired, metav1.CreateOptions{})
	if !apierrors.IsAlreadyExists(err) {
		return err
	}

	// Service updates must carry forward the allocated ClusterIP.
	existing, err := client.Get(ctx, desired.Name, metav1.GetOptions{})
	if err != nil {
		return err
	}
	desired.ResourceVersion = existing.ResourceVersion
	desired.Spec.ClusterIP = existing.Spec.ClusterIP
	desired.Spec.ClusterIPs = existing.Spec.ClusterIPs

	_, err = client.Update(ctx, desired, metav1.UpdateOptions{})
	return err
}

func (d *Deployer) ensureIngress(ctx context.Context) error {
	desired := manifest.BuildIngress(d.config)
	client := d.clientset.NetworkingV1().Ingresses(d.config.Namespace)

	_, err := client.Create(ctx, desired, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		_, err = client.Update(ctx, desired, metav1.UpdateOptions{})
	}
	return err
}

// ingressSupported reports whether the connected cluster serves the
// networking.k8s.io/v1 Ingress API (Kubernetes 1.19 or newer). Managed
// distributions report versions like v1.32.1-eks-5d632ec, which the
// parser tolerates.
func (d *Deployer) ingressSupported() (bool, error) {
	info, err := d.clientset.Discovery().ServerVersion()
	if err != nil {
		return false, fmt.Errorf("failed to get server version: %w", err)
	}

	v, err := version.ParseVersion(info.GitVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse server version %q: %w", info.GitVersion, err)
	}

	return v.EqualsOrNewer(ingressV1MinVersion), nil
}

// Remove deletes the resources created by Deploy. Deletion is idempotent:
// resources that are already gone are ignored.
func (d *Deployer) Remove(ctx context.Context, opts RemoveOptions) error {
	name := d.config.Name
	ns := d.config.Namespace

	err := d.clientset.NetworkingV1().Ingresses(ns).Delete(ctx, name, metav1.DeleteOptions{})
	if err := ignoreNotFound(err); err != nil {
		return errors.Wrap(errors.ErrCodeCluster, "failed to delete Ingress", err)
	}

	if !opts.KeepService {
		err = d.clientset.CoreV1().Services(ns).Delete(ctx, name, metav1.DeleteOptions{})
		if err := ignoreNotFound(err); err != nil {
			return errors.Wrap(errors.ErrCodeCluster, "failed to delete Service", err)
		}
	}

	err = d.clientset.AppsV1().Deployments(ns).Delete(ctx, name, metav1.DeleteOptions{})
	if err := ignoreNotFound(err); err != nil {
		return errors.Wrap(errors.ErrCodeCluster, "failed to delete Deployment", err)
	}

	slog.Info("removed", "name", name, "namespace", ns)
	return nil
}

// ignoreNotFound returns nil if the error is "not found", otherwise returns
// the error. Used to make resource deletion idempotent.
func ignoreNotFound(err error) error {
	if apierrors.IsNotFound(err) {
		return nil
	}
	return err
}
