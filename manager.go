// Package langman manages a localization-key document for a game content
// module: a nested JSON translation file whose entries are addressed by
// dotted key paths.
//
// A Manager owns two trees for its lifetime: the baseline (the document
// as of the last load or export) and the current, mutable one. Every
// mutation goes through the current tree only; the file on disk is
// untouched until Export, which is an explicit checkpoint. Pending
// changes are the diff of the two trees, computed on demand.
//
// A Manager is single-owner and not safe for concurrent use.
package langman

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/fablecraft/langman/debug"
	"github.com/fablecraft/langman/diff"
	"github.com/fablecraft/langman/export"
	"github.com/fablecraft/langman/format"
	"github.com/fablecraft/langman/keypath"
	"github.com/fablecraft/langman/search"
	"github.com/fablecraft/langman/tree"
)

type Manager struct {
	path     string
	baseline *tree.Node
	current  *tree.Node
}

// Open loads the JSON translation document at path.
func Open(path string) (*Manager, error) {
	node, err := tree.Load(path)
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("loaded %s:\n%v", path, node)
	}
	return &Manager{path: path, baseline: node.Clone(), current: node}, nil
}

// Create returns a manager over a new, empty document that will export
// to path. Nothing is written until Export.
func Create(path string) *Manager {
	return &Manager{
		path:     path,
		baseline: tree.NewNamespace(),
		current:  tree.NewNamespace(),
	}
}

// Path returns the source path the manager was opened against.
func (m *Manager) Path() string {
	return m.path
}

// Doc returns the live document tree. Callers must not mutate it
// directly; it is exposed for read-only traversal and encoding.
func (m *Manager) Doc() *tree.Node {
	return m.current
}

// Reload replaces the document wholesale from the source path,
// discarding all pending changes.
func (m *Manager) Reload() error {
	node, err := tree.Load(m.path)
	if err != nil {
		return err
	}
	m.baseline = node.Clone()
	m.current = node
	return nil
}

// Get returns the leaf value at key.
func (m *Manager) Get(key string) (string, error) {
	segs, err := keypath.Split(key)
	if err != nil {
		return "", err
	}
	return m.current.GetLeaf(segs)
}

// Lookup returns the node at key, leaf or namespace. Callers must not
// mutate the result.
func (m *Manager) Lookup(key string) (*tree.Node, error) {
	segs, err := keypath.Split(key)
	if err != nil {
		return nil, err
	}
	return m.current.Lookup(segs)
}

// Set creates or overwrites the leaf at key, creating intermediate
// namespaces as needed.
func (m *Manager) Set(key, value string) error {
	segs, err := keypath.Split(key)
	if err != nil {
		return err
	}
	return m.current.SetLeaf(segs, value)
}

// Delete removes the leaf or namespace at key and prunes any emptied
// ancestors.
func (m *Manager) Delete(key string) error {
	segs, err := keypath.Split(key)
	if err != nil {
		return err
	}
	return m.current.DeleteAt(segs)
}

// Pending returns the uncommitted changes relative to the baseline.
func (m *Manager) Pending() *diff.Changes {
	c := diff.Diff(m.baseline, m.current)
	if debug.Diff() {
		debug.Logf("pending: %d added %d modified %d deleted\n",
			len(c.Added), len(c.Modified), len(c.Deleted))
	}
	return c
}

// MergePatch returns the pending changes as an RFC 7386 merge patch.
func (m *Manager) MergePatch() ([]byte, error) {
	return diff.MergePatch(m.baseline, m.current)
}

// SearchKeys returns the key paths matching pattern, in traversal order.
func (m *Manager) SearchKeys(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("error compiling pattern %q: %w", pattern, err)
	}
	return search.Keys(m.current, re), nil
}

// SearchValues returns the leaves whose value matches pattern, in
// traversal order.
func (m *Manager) SearchValues(pattern string) ([]search.Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("error compiling pattern %q: %w", pattern, err)
	}
	return search.Values(m.current, re), nil
}

// Filter returns the leaves for which the boolean expression src holds,
// with `key` and `value` in scope per leaf.
func (m *Manager) Filter(src string) ([]search.Match, error) {
	return search.Filter(m.current, src)
}

// Export writes the current document. An empty target means the source
// path. Writing the source path commits: the baseline is reset to the
// current state and the pending set empties. Any other target is a
// non-committing dry run. Non-JSON formats are refused on the source
// path, since Reload could no longer read it; they need an explicit
// alternate target.
func (m *Manager) Export(target string, opts ...export.EncodeOption) error {
	if target == "" {
		target = m.path
	}
	commit := samePath(target, m.path)
	if f := export.FormatFromOpts(opts...); commit && !f.IsJSON() {
		return fmt.Errorf("%w: cannot write %s over the JSON source %s", format.ErrBadFormat, f, m.path)
	}
	if err := export.WriteFile(m.current, target, opts...); err != nil {
		return err
	}
	if debug.Export() {
		debug.Logf("exported %s commit=%v\n", target, commit)
	}
	if commit {
		m.baseline = m.current.Clone()
	}
	return nil
}

// ExportSplit writes one file per top-level namespace into dir. Split
// exports never commit.
func (m *Manager) ExportSplit(dir string, opts ...export.EncodeOption) error {
	return export.WriteSplitDir(m.current, dir, opts...)
}

// samePath reports whether a and b name the same file, comparing
// cleaned absolute forms so spellings like "./lang.json" still match.
func samePath(a, b string) bool {
	if aa, err := filepath.Abs(a); err == nil {
		a = aa
	}
	if bb, err := filepath.Abs(b); err == nil {
		b = bb
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
