// Package export encodes translation document trees to their on-disk
// forms.
//
// # Usage
//
//	// Canonical pretty JSON, insertion order, trailing newline
//	err := export.Encode(node, w)
//
//	// Encode with options
//	err := export.Encode(node, w, export.EncodeIndent(4))
//	err := export.Encode(node, w, export.EncodeFormat(format.YAMLFormat))
//
//	// Write a file, or one file per top-level namespace
//	err := export.WriteFile(node, "lang.json")
//	err := export.WriteSplitDir(node, "lang/")
//
// The canonical JSON form keeps keys in insertion order (not sorted) with
// a fixed indent and a trailing newline, so re-exports of unchanged data
// produce byte-identical files and version-control diffs stay minimal.
//
// # Related Packages
//
//   - github.com/fablecraft/langman/tree - document representation
//   - github.com/fablecraft/langman/format - target format names
package export
