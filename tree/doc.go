// Package tree provides the in-memory representation of a translation
// document.
//
// # Overview
//
// A document is a recursively nested, insertion-ordered mapping from
// segment names to child nodes. Every node is either a leaf holding a
// non-empty string value, or a namespace holding a non-empty ordered
// mapping of child nodes. The node structure is a tagged union: the Type
// field says which of the two shapes is populated, so traversal code
// matches on the tag instead of inspecting dynamic values.
//
// # Node Structure
//
// For NamespaceType nodes, Fields[i] is the segment name for the child at
// Values[i], so there are always the same number of fields as values, and
// insertion order is preserved across mutation and encoding.
//
// For LeafType nodes, the value is stored under the String field, and it
// is never empty.
//
// # Creating Nodes
//
//	leaf := tree.FromString("Longbow")
//	ns := tree.NewNamespace()
//
// # Mutation
//
// Get, Set and Delete address nodes by a slice of path segments (see the
// keypath package). Set creates intermediate namespaces as needed; Delete
// prunes namespaces it empties, so no namespace in a document is ever
// empty. A failed call leaves the tree unchanged.
//
// # Traversal
//
//	for key, val := range node.Leaves() {
//	    ...
//	}
//
// Leaves yields every leaf in depth-first insertion order with its joined
// key path. Each range restarts the traversal.
//
// # Related Packages
//
//   - github.com/fablecraft/langman/keypath - key path parsing
//   - github.com/fablecraft/langman/export - encoding to disk formats
//   - github.com/fablecraft/langman/diff - structural change sets
package tree
