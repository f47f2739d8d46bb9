// Package keypath provides parsing and formatting of dotted key paths.
//
// A key path addresses a node in a translation document by naming each
// segment from the root, joined with ASCII dots:
//
//	segs, err := keypath.Split("skills.archery.name")
//	key := keypath.Join([]string{"skills", "archery", "name"})
//
// There is no escape syntax: a dot always acts as a separator, so a
// segment name may not contain a literal dot. Empty keys and empty
// segments are rejected with ErrInvalidKey.
//
// # Related Packages
//
//   - github.com/fablecraft/langman/tree - document tree addressed by key paths
package keypath
