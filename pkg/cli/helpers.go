/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"
	corev1 "k8s.io/api/core/v1"

	"github.com/hellokube/hellokube/pkg/deployer"
	"github.com/hellokube/hellokube/pkg/k8s/client"
	"github.com/hellokube/hellokube/pkg/manifest"
	"github.com/hellokube/hellokube/pkg/serializer"
)

// parseOutputFormat validates the format flag and returns the parsed format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)",
			cmd.String("format"), serializer.SupportedFormats())
	}
	return format, nil
}

// configFromFlags builds a validated deployment configuration from the
// command's deployment flags.
func configFromFlags(cmd *cli.Command) (*manifest.Config, error) {
	cfg := manifest.NewConfig()
	cfg.Name = cmd.String("name")
	cfg.Namespace = cmd.String("namespace")
	cfg.Image = cmd.String("image")
	cfg.Replicas = cmd.Int32("replicas")
	cfg.ContainerPort = cmd.Int32("container-port")
	cfg.ServicePort = cmd.Int32("service-port")
	cfg.ServiceType = corev1.ServiceType(cmd.String("service-type"))
	cfg.IngressHost = cmd.String("ingress-host")
	cfg.IngressClassName = cmd.String("ingress-class")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newDeployer builds a cluster-connected Deployer from the command's
// kubeconfig and deployment flags.
func newDeployer(cmd *cli.Command) (*deployer.Deployer, error) {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	clientset, _, err := client.GetKubeClientWithConfig(cmd.String("kubeconfig"))
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return deployer.New(clientset, cfg), nil
}
