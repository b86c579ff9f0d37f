/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/hellokube/hellokube/pkg/defaults"
	"github.com/hellokube/hellokube/pkg/manifest"
	"github.com/hellokube/hellokube/pkg/oci"
	"github.com/hellokube/hellokube/pkg/serializer"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Render the Kubernetes deployment manifests",
		Description: `Render the Deployment, Service, and optional Ingress as a
multi-document YAML stream (or JSON array) without touching a cluster.

# Examples

Render with the defaults (3 replicas, port 80 -> 5000):
  hellokube manifest

Render with an ingress and write to a file:
  hellokube manifest --ingress-host hello.example.com --output hello.yaml

Push the rendered manifests to an OCI registry:
  hellokube manifest --push --registry ghcr.io --repository myorg/hello --tag v1.0.0`,
		Flags: append(deploymentFlags(),
			outputFlag,
			formatFlag,
			&cli.BoolFlag{
				Name:  "push",
				Usage: "push the rendered manifests to an OCI registry",
			},
			&cli.StringFlag{
				Name:  "registry",
				Usage: "OCI registry host for --push (e.g., ghcr.io, localhost:5000)",
			},
			&cli.StringFlag{
				Name:  "repository",
				Usage: "OCI repository path for --push (e.g., myorg/hello-manifests)",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "OCI artifact tag for --push",
				Value: "latest",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "use HTTP instead of HTTPS for the registry connection",
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "skip TLS certificate verification for the registry",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if format == serializer.FormatTable {
				return fmt.Errorf("table format is not supported for manifests (use %s or %s)",
					serializer.FormatYAML, serializer.FormatJSON)
			}

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if format == serializer.FormatJSON {
				data, err = manifest.RenderJSON(cfg)
			} else {
				data, err = manifest.RenderYAML(cfg)
			}
			if err != nil {
				return err
			}

			if err := writeOutput(cmd.String("output"), data); err != nil {
				return err
			}

			if cmd.Bool("push") {
				pushCtx, cancel := context.WithTimeout(ctx, defaults.RegistryPushTimeout)
				defer cancel()

				result, err := oci.PushManifests(pushCtx, cfg, oci.PushOptions{
					Registry:    cmd.String("registry"),
					Repository:  cmd.String("repository"),
					Tag:         cmd.String("tag"),
					PlainHTTP:   cmd.Bool("plain-http"),
					InsecureTLS: cmd.Bool("insecure"),
				})
				if err != nil {
					return fmt.Errorf("failed to push manifests: %w", err)
				}
				fmt.Fprintf(os.Stderr, "pushed %s (%s)\n", result.Reference, result.Digest)
			}

			return nil
		},
	}
}

// writeOutput writes data to the given path, or stdout when empty. An
// existing directory gets a manifests.yaml file inside it.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "manifests.yaml")
	}
	return os.WriteFile(path, data, 0o600)
}
