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

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/hellokube/hellokube/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
			wantErr:    false,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
			wantErr:    false,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestConfigFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, c *cli.Command)
	}{
		{
			name: "defaults",
			args: []string{"test"},
			check: func(t *testing.T, c *cli.Command) {
				cfg, err := configFromFlags(c)
				if err != nil {
					t.Fatalf("configFromFlags() error = %v", err)
				}
				if cfg.Replicas != 3 {
					t.Errorf("Replicas = %d, want 3", cfg.Replicas)
				}
				if cfg.ContainerPort != 5000 {
					t.Errorf("ContainerPort = %d, want 5000", cfg.ContainerPort)
				}
			},
		},
		{
			name: "custom replicas and ports",
			args: []string{"test", "--replicas", "5", "--service-port", "8080"},
			check: func(t *testing.T, c *cli.Command) {
				cfg, err := configFromFlags(c)
				if err != nil {
					t.Fatalf("configFromFlags() error = %v", err)
				}
				if cfg.Replicas != 5 {
					t.Errorf("Replicas = %d, want 5", cfg.Replicas)
				}
				if cfg.ServicePort != 8080 {
					t.Errorf("ServicePort = %d, want 8080", cfg.ServicePort)
				}
			},
		},
		{
			name: "zero replicas rejected",
			args: []string{"test", "--replicas", "0"},
			check: func(t *testing.T, c *cli.Command) {
				if _, err := configFromFlags(c); err == nil {
					t.Error("configFromFlags() expected error for zero replicas")
				}
			},
		},
		{
			name: "invalid image rejected",
			args: []string{"test", "--image", "Not A Valid Image!!"},
			check: func(t *testing.T, c *cli.Command) {
				if _, err := configFromFlags(c); err == nil {
					t.Error("configFromFlags() expected error for invalid image")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: deploymentFlags(),
				Action: func(_ context.Context, c *cli.Command) error {
					tt.check(t, c)
					return nil
				},
			}

			if err := cmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}
