/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hellokube/hellokube/pkg/defaults"
	"github.com/hellokube/hellokube/pkg/serializer"
)

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:                  "status",
		EnableShellCompletion: true,
		Usage:                 "Show the status of a deployed responder",
		Description: `Report the observed state of the deployment: replica counts,
service exposure, and deployment conditions.

The status can be output in JSON, YAML, or table format.

# Examples

Show status as a table:
  hellokube status --format table

Write status as JSON to a file:
  hellokube status --format json --output status.json`,
		Flags: append(deploymentFlags(),
			kubeconfigFlag,
			outputFlag,
			formatFlag,
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			d, err := newDeployer(cmd)
			if err != nil {
				return err
			}

			statusCtx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
			defer cancel()

			status, err := d.Status(statusCtx)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() { _ = w.Close() }()
			return w.Serialize(ctx, status)
		},
	}
}
