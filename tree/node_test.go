package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustSet(t *testing.T, y *Node, key string, segs []string, val string) {
	t.Helper()
	if err := y.SetLeaf(segs, val); err != nil {
		t.Fatalf("SetLeaf(%s) error: %v", key, err)
	}
}

func build(t *testing.T, kvs [][2]string) *Node {
	t.Helper()
	root := NewNamespace()
	for _, kv := range kvs {
		segs := splitDots(kv[0])
		mustSet(t, root, kv[0], segs, kv[1])
	}
	return root
}

func splitDots(key string) []string {
	var segs []string
	start := 0
	for i := 0; i <= len(key); i++ {
		if i == len(key) || key[i] == '.' {
			segs = append(segs, key[start:i])
			start = i + 1
		}
	}
	return segs
}

func leafList(y *Node) [][2]string {
	var res [][2]string
	for k, v := range y.Leaves() {
		res = append(res, [2]string{k, v})
	}
	return res
}

func TestSetGet(t *testing.T) {
	root := NewNamespace()
	mustSet(t, root, "a.b.c", []string{"a", "b", "c"}, "x")
	got, err := root.GetLeaf([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("GetLeaf error: %v", err)
	}
	if got != "x" {
		t.Errorf("GetLeaf = %q, want %q", got, "x")
	}
}

func TestSetOverwrite(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}})
	mustSet(t, root, "a.b", []string{"a", "b"}, "y")
	got, err := root.GetLeaf([]string{"a", "b"})
	if err != nil {
		t.Fatalf("GetLeaf error: %v", err)
	}
	if got != "y" {
		t.Errorf("GetLeaf = %q, want %q", got, "y")
	}
}

func TestSetThroughLeaf(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}})
	err := root.SetLeaf([]string{"a", "b", "c"}, "y")
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("SetLeaf through leaf = %v, want ErrInvalidPath", err)
	}
	// failed call leaves the tree unchanged
	want := [][2]string{{"a.b", "x"}}
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("tree changed after failed set (-want +got):\n%s", d)
	}
}

func TestSetOverNamespace(t *testing.T) {
	root := build(t, [][2]string{{"a.b.c", "x"}})
	if err := root.SetLeaf([]string{"a", "b"}, "y"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("SetLeaf over namespace = %v, want ErrInvalidPath", err)
	}
}

func TestSetEmptyValue(t *testing.T) {
	root := NewNamespace()
	if err := root.SetLeaf([]string{"a"}, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("SetLeaf empty value = %v, want ErrValidation", err)
	}
}

func TestGetNotFound(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}})
	for _, segs := range [][]string{
		{"missing"},
		{"a", "missing"},
		{"a", "b", "c"}, // traverses through leaf a.b
		{"a"},           // namespace, not a leaf
	} {
		if _, err := root.GetLeaf(segs); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetLeaf(%v) = %v, want ErrNotFound", segs, err)
		}
	}
}

func TestDeleteLeaf(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}, {"a.c", "y"}})
	if err := root.DeleteAt([]string{"a", "b"}); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	want := [][2]string{{"a.c", "y"}}
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", d)
	}
}

func TestDeleteNamespace(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}, {"a.c", "y"}, {"d", "z"}})
	if err := root.DeleteAt([]string{"a"}); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	want := [][2]string{{"d", "z"}}
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", d)
	}
}

func TestDeletePrunes(t *testing.T) {
	root := build(t, [][2]string{{"a.b.c.d", "x"}, {"e", "y"}})
	if err := root.DeleteAt([]string{"a", "b", "c", "d"}); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	// a.b.c, a.b and a are all emptied and pruned, e survives.
	want := [][2]string{{"e", "y"}}
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", d)
	}
	if Get(root, "a") != nil {
		t.Error("empty namespace a not pruned")
	}
}

func TestDeleteKeepsRoot(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}})
	if err := root.DeleteAt([]string{"a", "b"}); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	if root.Type != NamespaceType || len(root.Fields) != 0 {
		t.Errorf("root not an empty namespace after last delete: %+v", root)
	}
}

func TestDeletePruneStopsAtNonEmpty(t *testing.T) {
	root := build(t, [][2]string{{"a.b.c", "x"}, {"a.d", "y"}})
	if err := root.DeleteAt([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("DeleteAt error: %v", err)
	}
	want := [][2]string{{"a.d", "y"}}
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", d)
	}
}

func TestDeleteNotFound(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}})
	if err := root.DeleteAt([]string{"missing", "path"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteAt(missing.path) = %v, want ErrNotFound", err)
	}
	if err := root.DeleteAt([]string{"a", "b", "c"}); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("DeleteAt through leaf = %v, want ErrInvalidPath", err)
	}
}

func TestLeavesOrder(t *testing.T) {
	root := build(t, [][2]string{
		{"ui.title", "Title"},
		{"ui.menu.start", "Start"},
		{"ui.menu.quit", "Quit"},
		{"events.harvest", "Harvest"},
	})
	want := [][2]string{
		{"ui.title", "Title"},
		{"ui.menu.start", "Start"},
		{"ui.menu.quit", "Quit"},
		{"events.harvest", "Harvest"},
	}
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("traversal order mismatch (-want +got):\n%s", d)
	}
	// restartable: a second range sees the same sequence
	if d := cmp.Diff(want, leafList(root)); d != "" {
		t.Errorf("second traversal mismatch (-want +got):\n%s", d)
	}
}

func TestCloneEqual(t *testing.T) {
	root := build(t, [][2]string{{"a.b", "x"}, {"c", "y"}})
	dup := root.Clone()
	if !Equal(root, dup) {
		t.Fatal("clone not equal to original")
	}
	mustSet(t, dup, "a.b", []string{"a", "b"}, "changed")
	if Equal(root, dup) {
		t.Error("mutating clone affected original")
	}
	if v, _ := root.GetLeaf([]string{"a", "b"}); v != "x" {
		t.Errorf("original changed: %q", v)
	}
}
