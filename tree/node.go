package tree

import (
	"iter"
	"slices"
	"strings"

	"github.com/fablecraft/langman/keypath"
)

// Node is one node of a translation document: a tagged union of a leaf
// string value and an ordered namespace mapping, discriminated by Type.
type Node struct {
	Type Type

	// String holds the value for LeafType nodes.
	String string

	// Fields and Values are parallel slices for NamespaceType nodes:
	// Fields[i] names the child stored at Values[i]. Insertion order
	// is preserved.
	Fields []string
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{Type: LeafType, String: v}
}

func NewNamespace() *Node {
	return &Node{Type: NamespaceType}
}

// Get returns the direct child named field, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) indexOf(field string) int {
	return slices.Index(y.Fields, field)
}

// put sets or appends the direct child named field.
func (y *Node) put(field string, child *Node) {
	if i := y.indexOf(field); i != -1 {
		y.Values[i] = child
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, child)
}

func (y *Node) removeAt(i int) {
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
}

func (y *Node) Clone() *Node {
	res := &Node{Type: y.Type, String: y.String}
	if y.Type != NamespaceType {
		return res
	}
	res.Fields = slices.Clone(y.Fields)
	res.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		res.Values[i] = yv.Clone()
	}
	return res
}

// Leaves returns a restartable depth-first traversal over all leaves,
// yielding each joined key path with its value in insertion order.
func (y *Node) Leaves() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		y.leaves("", yield)
	}
}

func (y *Node) leaves(prefix string, yield func(string, string) bool) bool {
	if y.Type == LeafType {
		return yield(prefix, y.String)
	}
	for i, f := range y.Fields {
		if !y.Values[i].leaves(keypath.Child(prefix, f), yield) {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing two nodes. The result will be 0
// if a==b, -1 if a < b, and +1 if a > b. Leaves order before namespaces;
// namespaces compare field by field in insertion order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		if a.Type == LeafType {
			return -1
		}
		return 1
	}
	if a.Type == LeafType {
		return strings.Compare(a.String, b.String)
	}
	lenA, lenB := len(a.Fields), len(b.Fields)
	n := min(lenA, lenB)
	for i := range n {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	switch {
	case lenA < lenB:
		return -1
	case lenA > lenB:
		return 1
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
