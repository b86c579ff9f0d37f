// Package client provides Kubernetes client construction with automatic
// kubeconfig discovery (KUBECONFIG, ~/.kube/config, in-cluster) and a
// process-wide cached client for connection reuse.
package client
