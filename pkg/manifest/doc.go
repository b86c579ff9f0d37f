// Package manifest builds the Kubernetes objects that run the hello
// responder: a Deployment with a configurable replica count, a Service
// mapping the external port to the container port, and an optional
// Ingress. The builders return typed client-go objects; render helpers
// serialize them to YAML or JSON.
package manifest
