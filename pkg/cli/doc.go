/*
Copyright (c) 2025, the HelloKube authors.
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the hellokube command line interface using
// github.com/urfave/cli/v3. Commands:
//
//   - serve: run the HTTP responder in the foreground
//   - manifest: render the Kubernetes manifests (optionally push to OCI)
//   - deploy: create or update the resources on a cluster
//   - status: report the observed state of a deployment
//   - remove: delete the resources
package cli
