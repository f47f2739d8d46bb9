package tree

import (
	"fmt"

	"github.com/fablecraft/langman/keypath"
)

// GetLeaf descends segs from y and returns the leaf value at the end.
// Any absent segment, any traversal through a leaf, and a final node
// that is a namespace all report ErrNotFound.
func (y *Node) GetLeaf(segs []string) (string, error) {
	n := y
	for i, seg := range segs {
		if n.Type != NamespaceType {
			return "", fmt.Errorf("%w: %q is a leaf, not a namespace", ErrNotFound, keypath.Join(segs[:i]))
		}
		c := Get(n, seg)
		if c == nil {
			return "", fmt.Errorf("%w: %q", ErrNotFound, keypath.Join(segs[:i+1]))
		}
		n = c
	}
	if n.Type != LeafType {
		return "", fmt.Errorf("%w: %q is a namespace, not a leaf", ErrNotFound, keypath.Join(segs))
	}
	return n.String, nil
}

// Lookup descends segs and returns the node at the end, leaf or
// namespace. Traversal through a leaf reports ErrNotFound like GetLeaf.
func (y *Node) Lookup(segs []string) (*Node, error) {
	n := y
	for i, seg := range segs {
		if n.Type != NamespaceType {
			return nil, fmt.Errorf("%w: %q is a leaf, not a namespace", ErrNotFound, keypath.Join(segs[:i]))
		}
		c := Get(n, seg)
		if c == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, keypath.Join(segs[:i+1]))
		}
		n = c
	}
	return n, nil
}

// SetLeaf overwrites or creates the leaf at segs with value, creating
// intermediate namespaces as needed. An existing intermediate that is a
// leaf, or an existing final node that is a namespace, reports
// ErrInvalidPath. An empty value reports ErrValidation. The tree is
// unchanged on error.
func (y *Node) SetLeaf(segs []string, value string) error {
	if len(segs) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if value == "" {
		return fmt.Errorf("%w: empty value for %q", ErrValidation, keypath.Join(segs))
	}
	if y.Type != NamespaceType {
		return fmt.Errorf("%w: root is not a namespace", ErrInvalidPath)
	}
	// Validate the existing prefix before touching anything so a
	// failed call leaves the tree as it was.
	n := y
	i := 0
	for ; i < len(segs)-1; i++ {
		c := Get(n, segs[i])
		if c == nil {
			break
		}
		if c.Type != NamespaceType {
			return fmt.Errorf("%w: %q is a leaf, not a namespace", ErrInvalidPath, keypath.Join(segs[:i+1]))
		}
		n = c
	}
	if i == len(segs)-1 {
		if c := Get(n, segs[i]); c != nil && c.Type != LeafType {
			return fmt.Errorf("%w: %q is a namespace, not a leaf", ErrInvalidPath, keypath.Join(segs))
		}
		n.put(segs[i], FromString(value))
		return nil
	}
	// Build the missing suffix bottom-up and attach it in one put.
	sub := FromString(value)
	for j := len(segs) - 1; j > i; j-- {
		ns := NewNamespace()
		ns.put(segs[j], sub)
		sub = ns
	}
	n.put(segs[i], sub)
	return nil
}

// DeleteAt removes the node at segs, leaf or namespace, then prunes any
// now-empty ancestor namespaces up to (but not including) the root. An
// absent path reports ErrNotFound; traversal through a leaf reports
// ErrInvalidPath.
func (y *Node) DeleteAt(segs []string) error {
	if len(segs) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	type hop struct {
		parent *Node
		index  int
	}
	hops := make([]hop, 0, len(segs))
	n := y
	for i, seg := range segs {
		if n.Type != NamespaceType {
			return fmt.Errorf("%w: %q is a leaf, not a namespace", ErrInvalidPath, keypath.Join(segs[:i]))
		}
		j := n.indexOf(seg)
		if j == -1 {
			return fmt.Errorf("%w: %q", ErrNotFound, keypath.Join(segs[:i+1]))
		}
		hops = append(hops, hop{parent: n, index: j})
		n = n.Values[j]
	}
	last := hops[len(hops)-1]
	last.parent.removeAt(last.index)
	// Prune emptied ancestors, never the root.
	for i := len(hops) - 2; i >= 0; i-- {
		h := hops[i]
		if len(h.parent.Values[h.index].Fields) != 0 {
			break
		}
		h.parent.removeAt(h.index)
	}
	return nil
}
