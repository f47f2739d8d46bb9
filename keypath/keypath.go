package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey indicates a malformed key path: an empty key, or a key
// with an empty segment ("a..b", ".a", "a.").
var ErrInvalidKey = errors.New("invalid key")

const sep = "."

// Split splits a dotted key path into its segments.
//
// Examples:
//   - Split("a") → ["a"]
//   - Split("a.b.c") → ["a", "b", "c"]
//   - Split("") → ErrInvalidKey
//   - Split("a..b") → ErrInvalidKey
func Split(key string) ([]string, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	segs := strings.Split(key, sep)
	for i, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrInvalidKey, i, key)
		}
	}
	return segs, nil
}

// Join is the inverse of Split.
func Join(segs []string) string {
	return strings.Join(segs, sep)
}

// Child appends one segment to an already-joined key path. The parent
// may be empty, in which case the result is the segment itself.
func Child(parent, seg string) string {
	if parent == "" {
		return seg
	}
	return parent + sep + seg
}
