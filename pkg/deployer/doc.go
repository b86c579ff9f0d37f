// Package deployer applies the manifest-built objects to a Kubernetes
// cluster and manages their lifecycle: idempotent create-or-update,
// rollout waiting, status reporting, and removal. Ingress creation is
// gated on the cluster serving networking.k8s.io/v1.
package deployer
