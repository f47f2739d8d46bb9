package tree

import "errors"

var (
	// ErrNotFound indicates a get or delete on a path that does not
	// exist in the document.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPath indicates a set that would traverse through, or
	// replace, an existing node of the wrong kind.
	ErrInvalidPath = errors.New("invalid path")

	// ErrValidation indicates content that violates the document
	// invariant: every leaf a non-empty string, every namespace a
	// non-empty mapping.
	ErrValidation = errors.New("validation error")
)
