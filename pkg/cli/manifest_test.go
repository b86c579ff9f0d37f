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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManifestCmdRendersToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hello.yaml")

	cmd := manifestCmd()
	err := cmd.Run(context.Background(), []string{"manifest", "--output", out})
	if err != nil {
		t.Fatalf("manifest command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "kind: Deployment") {
		t.Error("output missing Deployment")
	}
	if !strings.Contains(content, "kind: Service") {
		t.Error("output missing Service")
	}
	if !strings.Contains(content, "replicas: 3") {
		t.Error("output missing default replica count")
	}
	if strings.Contains(content, "kind: Ingress") {
		t.Error("output contains Ingress without --ingress-host")
	}
}

func TestManifestCmdWithIngress(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hello.yaml")

	cmd := manifestCmd()
	err := cmd.Run(context.Background(), []string{
		"manifest", "--ingress-host", "hello.example.com", "--output", out,
	})
	if err != nil {
		t.Fatalf("manifest command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "kind: Ingress") {
		t.Error("output missing Ingress")
	}
}

func TestManifestCmdJSONFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hello.json")

	cmd := manifestCmd()
	err := cmd.Run(context.Background(), []string{
		"manifest", "--format", "json", "--output", out,
	})
	if err != nil {
		t.Fatalf("manifest command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), `"kind": "Deployment"`) {
		t.Error("output missing Deployment in JSON")
	}
}

func TestManifestCmdRejectsTableFormat(t *testing.T) {
	cmd := manifestCmd()
	err := cmd.Run(context.Background(), []string{"manifest", "--format", "table"})
	if err == nil {
		t.Fatal("expected error for table format")
	}
}

func TestManifestCmdInvalidReplicas(t *testing.T) {
	cmd := manifestCmd()
	err := cmd.Run(context.Background(), []string{"manifest", "--replicas", "0"})
	if err == nil {
		t.Fatal("expected error for zero replicas")
	}
}
