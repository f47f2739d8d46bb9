package langman

import "github.com/fablecraft/langman/diff"

// Stats summarizes the live document: leaf count, top-level namespace
// count, and the pending change set.
type Stats struct {
	TotalKeys  int
	Namespaces int
	Pending    *diff.Changes
}

func (m *Manager) Stats() *Stats {
	total := 0
	for range m.current.Leaves() {
		total++
	}
	return &Stats{
		TotalKeys:  total,
		Namespaces: len(m.current.Fields),
		Pending:    m.Pending(),
	}
}
