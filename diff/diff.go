package diff

import "github.com/fablecraft/langman/tree"

// Entry is one pending change. From is the baseline value (unset for
// added keys) and To the current one (unset for deleted keys).
type Entry struct {
	Key  string
	From string
	To   string
}

// Changes is a pending-change set. A key appears in at most one of the
// three collections. Added and Modified follow current-tree traversal
// order, Deleted follows baseline traversal order.
type Changes struct {
	Added    []Entry
	Modified []Entry
	Deleted  []Entry
}

// Diff compares the leaves of baseline and current.
func Diff(baseline, current *tree.Node) *Changes {
	base := map[string]string{}
	var baseOrder []string
	for k, v := range baseline.Leaves() {
		base[k] = v
		baseOrder = append(baseOrder, k)
	}
	cur := map[string]string{}
	c := &Changes{}
	for k, v := range current.Leaves() {
		cur[k] = v
		old, ok := base[k]
		switch {
		case !ok:
			c.Added = append(c.Added, Entry{Key: k, To: v})
		case old != v:
			c.Modified = append(c.Modified, Entry{Key: k, From: old, To: v})
		}
	}
	for _, k := range baseOrder {
		if _, ok := cur[k]; !ok {
			c.Deleted = append(c.Deleted, Entry{Key: k, From: base[k]})
		}
	}
	return c
}

func (c *Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Modified) == 0 && len(c.Deleted) == 0
}

// Total returns the number of pending changes of all kinds.
func (c *Changes) Total() int {
	return len(c.Added) + len(c.Modified) + len(c.Deleted)
}

func keys(es []Entry) []string {
	if len(es) == 0 {
		return nil
	}
	res := make([]string, len(es))
	for i := range es {
		res[i] = es[i].Key
	}
	return res
}

func (c *Changes) AddedKeys() []string    { return keys(c.Added) }
func (c *Changes) ModifiedKeys() []string { return keys(c.Modified) }
func (c *Changes) DeletedKeys() []string  { return keys(c.Deleted) }
