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

package manifest

import (
	"bytes"
	"encoding/json"

	"sigs.k8s.io/yaml"

	"github.com/hellokube/hellokube/pkg/errors"
)

const yamlDocSeparator = "---\n"

// Objects returns the Kubernetes objects described by the configuration in
// apply order: Deployment, Service, then the optional Ingress.
func Objects(c *Config) ([]any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	objects := []any{
		BuildDeployment(c),
		BuildService(c),
	}
	if ing := BuildIngress(c); ing != nil {
		objects = append(objects, ing)
	}

	return objects, nil
}

// RenderYAML renders the configured objects as a multi-document YAML stream,
// suitable for kubectl apply.
func RenderYAML(c *Config) ([]byte, error) {
	objects, err := Objects(c)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i, obj := range objects {
		if i > 0 {
			buf.WriteString(yamlDocSeparator)
		}
		data, err := yaml.Marshal(obj)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to marshal object to YAML", err)
		}
		buf.Write(data)
	}

	return buf.Bytes(), nil
}

// RenderJSON renders the configured objects as an indented JSON array.
func RenderJSON(c *Config) ([]byte, error) {
	objects, err := Objects(c)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(objects, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to marshal objects to JSON", err)
	}

	return data, nil
}
