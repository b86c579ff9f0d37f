/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"strings"
	"testing"

	"github.com/hellokube/hellokube/pkg/manifest"
)

func TestStripProtocol(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "https prefix",
			input:    "https://ghcr.io",
			expected: "ghcr.io",
		},
		{
			name:     "http prefix",
			input:    "http://localhost:5000",
			expected: "localhost:5000",
		},
		{
			name:     "no prefix",
			input:    "registry.example.com",
			expected: "registry.example.com",
		},
		{
			name:     "with port no prefix",
			input:    "localhost:5000",
			expected: "localhost:5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripProtocol(tt.input); got != tt.expected {
				t.Errorf("stripProtocol(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPushRequiresTag(t *testing.T) {
	_, err := Push(context.Background(), t.TempDir(), PushOptions{
		Registry:   "localhost:5000",
		Repository: "hellokube/manifests",
	})
	if err == nil {
		t.Fatal("expected error for missing tag")
	}
	if !strings.Contains(err.Error(), "tag is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPushInvalidReference(t *testing.T) {
	_, err := Push(context.Background(), t.TempDir(), PushOptions{
		Registry:   "localhost:5000",
		Repository: "Not A Repo!!",
		Tag:        "v1",
	})
	if err == nil {
		t.Fatal("expected error for invalid reference")
	}
	if !strings.Contains(err.Error(), "invalid artifact reference") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPushManifestsInvalidConfig(t *testing.T) {
	cfg := manifest.NewConfig()
	cfg.Replicas = 0

	_, err := PushManifests(context.Background(), cfg, PushOptions{
		Registry:   "localhost:5000",
		Repository: "hellokube/manifests",
		Tag:        "v1",
	})
	if err == nil {
		t.Fatal("expected error for invalid manifest config")
	}
}
