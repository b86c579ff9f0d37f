package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Name     string            `json:"name" yaml:"name"`
	Replicas int               `json:"replicas" yaml:"replicas"`
	Labels   map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

func TestWriterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatJSON, buf)

	in := sample{Name: "hello", Replicas: 3}
	if err := w.Serialize(context.Background(), in); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	var out sample
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Name != in.Name || out.Replicas != in.Replicas {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestWriterYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatYAML, buf)

	in := sample{Name: "hello", Replicas: 3, Labels: map[string]string{"app": "hello"}}
	if err := w.Serialize(context.Background(), in); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	var out sample
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if out.Labels["app"] != "hello" {
		t.Errorf("expected label app=hello, got %v", out.Labels)
	}
}

func TestWriterTable(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatTable, buf)

	if err := w.Serialize(context.Background(), sample{Name: "hello", Replicas: 3}); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "FIELD") || !strings.Contains(got, "Replicas") {
		t.Errorf("unexpected table output:\n%s", got)
	}
}

func TestWriterUnknownFormatDefaultsToYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(Format("xml"), buf)

	if err := w.Serialize(context.Background(), sample{Name: "hello"}); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "name: hello") {
		t.Errorf("expected YAML fallback, got:\n%s", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	w := NewFileWriterOrStdout(FormatYAML, path)

	if err := w.Serialize(context.Background(), sample{Name: "hello"}); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "name: hello") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Errorf("expected 3 formats, got %d", len(formats))
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported as unknown", f)
		}
	}
}
