/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hellokube/hellokube/pkg/manifest"
	"github.com/hellokube/hellokube/pkg/serializer"
)

// Flags shared by the manifest and cluster commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format (" + strings.Join(serializer.SupportedFormats(), ", ") + ")",
		Value:   string(serializer.FormatYAML),
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "path to kubeconfig file (default: KUBECONFIG, ~/.kube/config, in-cluster)",
		Sources: cli.EnvVars("KUBECONFIG"),
	}
)

// deploymentFlags returns the flags describing the deployment shape. They
// mirror the manifest.Config fields and default to its defaults.
func deploymentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "name for the Deployment, Service, and Ingress objects",
			Value: manifest.DefaultName,
		},
		&cli.StringFlag{
			Name:    "namespace",
			Aliases: []string{"n"},
			Usage:   "target Kubernetes namespace",
			Sources: cli.EnvVars("HELLOKUBE_NAMESPACE"),
			Value:   manifest.DefaultNamespace,
		},
		&cli.StringFlag{
			Name:    "image",
			Usage:   "responder container image",
			Sources: cli.EnvVars("HELLOKUBE_IMAGE"),
			Value:   manifest.DefaultImage,
		},
		&cli.Int32Flag{
			Name:    "replicas",
			Aliases: []string{"r"},
			Usage:   "desired number of replicas",
			Value:   manifest.DefaultReplicas,
		},
		&cli.Int32Flag{
			Name:  "container-port",
			Usage: "port the responder binds inside the container",
			Value: manifest.DefaultContainerPort,
		},
		&cli.Int32Flag{
			Name:  "service-port",
			Usage: "externally exposed service port",
			Value: manifest.DefaultServicePort,
		},
		&cli.StringFlag{
			Name:  "service-type",
			Usage: "service type (ClusterIP, NodePort, LoadBalancer)",
			Value: "LoadBalancer",
		},
		&cli.StringFlag{
			Name:  "ingress-host",
			Usage: "host for the optional Ingress (omit to skip Ingress)",
		},
		&cli.StringFlag{
			Name:  "ingress-class",
			Usage: "ingress class name for the optional Ingress",
		},
	}
}
