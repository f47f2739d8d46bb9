package langman

import (
	"github.com/fablecraft/langman/keypath"
	"github.com/fablecraft/langman/tree"
)

var (
	ErrInvalidKey  = keypath.ErrInvalidKey
	ErrNotFound    = tree.ErrNotFound
	ErrInvalidPath = tree.ErrInvalidPath
	ErrValidation  = tree.ErrValidation
)
