// Package search provides stateless queries over a translation document
// tree.
//
// Queries run over the live tree's depth-first leaf traversal and
// preserve its order. Regular expressions are unanchored and
// case-sensitive unless the pattern says otherwise; no result limit is
// imposed here, callers may truncate.
//
// # Usage
//
//	keys := search.Keys(root, regexp.MustCompile(`^ui\.`))
//	hits := search.Values(root, regexp.MustCompile(`Dragon`))
//
//	// expression filter over key/value pairs
//	hits, err := search.Filter(root, `key startsWith "skills." && len(value) > 40`)
//
// # Related Packages
//
//   - github.com/fablecraft/langman/tree - document representation
package search
