// Package errors provides structured error types shared by the progress bar
// service so failures can be classified once and mapped to exactly one HTTP
// status by the transport layer.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeRenderFailed,
//	    "failed to construct progress bar",
//	    execErr,
//	    map[string]any{
//	        "query": r.URL.RequestURI(),
//	    },
//	)
package errors
