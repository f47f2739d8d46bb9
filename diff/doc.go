// Package diff computes pending-change sets between two translation
// document trees.
//
// A change set is a pure function of a baseline tree (the state as of
// the last load or export) and the current tree; it is recomputed on
// demand rather than maintained incrementally, so reverting a value to
// its baseline or deleting a freshly added key nets out to no recorded
// change by construction.
//
// # Usage
//
//	changes := diff.Diff(baseline, current)
//	if !changes.Empty() {
//	    diff.Render(os.Stdout, changes, true)
//	}
//
//	// RFC 7386 merge patch of the pending changes
//	patch, err := diff.MergePatch(baseline, current)
//
// # Related Packages
//
//   - github.com/fablecraft/langman/tree - document representation
package diff
