// Package format names the on-disk encodings a translation document can
// be written in.
//
// JSON is the canonical source format; YAML is available as an export
// target for toolchains that consume it. Loading is JSON only.
//
// # Related Packages
//
//   - github.com/fablecraft/langman/export - encodes documents in a Format
package format
