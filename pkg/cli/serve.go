/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hellokube/hellokube/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the Hello World HTTP responder",
		Description: `Run the HTTP responder in the foreground until interrupted.

The responder answers every request to / with the greeting, and also
serves /health, /ready, and /metrics (Prometheus format).

# Examples

Serve on the default port (5000):
  hellokube serve

Serve on a custom port:
  hellokube serve --port 8080`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "port to listen on",
				Sources: cli.EnvVars("PORT"),
				Value:   server.DefaultPort,
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "address to bind (default: all interfaces)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			cfg.Port = cmd.Int("port")
			cfg.Address = cmd.String("address")

			s := server.New(server.WithConfig(cfg))
			return s.Run(ctx)
		},
	}
}
