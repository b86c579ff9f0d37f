// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeCluster,
//	    "failed to create Deployment",
//	    apiErr,
//	    map[string]interface{}{
//	        "namespace": cfg.Namespace,
//	        "name": cfg.Name,
//	    },
//	)
package errors
