/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hellokube/hellokube/pkg/defaults"
)

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Deploy the Hello World responder to a Kubernetes cluster",
		Description: `Create or update the Deployment, Service, and optional Ingress on
the cluster. The operation is idempotent and safe to rerun.

# Examples

Deploy with the defaults and wait for the rollout:
  hellokube deploy

Deploy 5 replicas of a custom image without waiting:
  hellokube deploy --replicas 5 --image myrepo/hello:v2 --wait=false

Deploy with an ingress:
  hellokube deploy --ingress-host hello.example.com --ingress-class nginx`,
		Flags: append(deploymentFlags(),
			kubeconfigFlag,
			&cli.BoolFlag{
				Name:  "wait",
				Usage: "wait for the rollout to complete",
				Value: true,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout for waiting for the rollout",
				Value: defaults.K8sRolloutTimeout,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := newDeployer(cmd)
			if err != nil {
				return err
			}

			if err := d.Deploy(ctx); err != nil {
				return err
			}

			if cmd.Bool("wait") {
				if err := d.WaitForRollout(ctx, cmd.Duration("timeout")); err != nil {
					return err
				}
			}

			fmt.Fprintf(os.Stdout, "deployed %s/%s (%d replicas)\n",
				cmd.String("namespace"), cmd.String("name"), cmd.Int32("replicas"))
			return nil
		},
	}
}
