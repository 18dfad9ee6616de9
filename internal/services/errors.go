package services

import "errors"

// Define common service errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("conflict") // e.g., duplicate slug
	ErrValidation = errors.New("validation failed")
	// ErrStaleOrder means a reorder's fromOrder no longer matches the job's
	// stored order; the caller is operating on stale state.
	ErrStaleOrder = errors.New("stale order precondition")
)
