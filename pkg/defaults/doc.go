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

// Package defaults provides centralized configuration constants.
//
// This package defines timeout values used across the codebase. Centralizing
// these values ensures consistency between the server, the deployer, and the
// CLI, and makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/hellokube/hellokube/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
//	defer cancel()
package defaults
