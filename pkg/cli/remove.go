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
	"github.com/hellokube/hellokube/pkg/deployer"
)

func removeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "remove",
		EnableShellCompletion: true,
		Usage:                 "Remove a deployed responder from the cluster",
		Description: `Delete the Ingress, Service, and Deployment created by deploy.
Resources that are already gone are ignored.

# Examples

Remove everything:
  hellokube remove

Remove but keep the Service (preserves the load balancer address):
  hellokube remove --keep-service`,
		Flags: append(deploymentFlags(),
			kubeconfigFlag,
			&cli.BoolFlag{
				Name:  "keep-service",
				Usage: "leave the Service in place",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := newDeployer(cmd)
			if err != nil {
				return err
			}

			removeCtx, cancel := context.WithTimeout(ctx, defaults.K8sCleanupTimeout)
			defer cancel()

			if err := d.Remove(removeCtx, deployer.RemoveOptions{
				KeepService: cmd.Bool("keep-service"),
			}); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "removed %s/%s\n",
				cmd.String("namespace"), cmd.String("name"))
			return nil
		},
	}
}
