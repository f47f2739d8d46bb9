package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fablecraft/langman/tree"
)

// rootFile collects top-level leaves, which have no namespace file of
// their own.
const rootFile = "_root"

// WriteSplitDir writes one file per top-level namespace of y into dir,
// named after the namespace with the format's suffix. Top-level leaves,
// if any, are gathered into a "_root" file. The directory must already
// exist.
func WriteSplitDir(y *tree.Node, dir string, opts ...EncodeOption) error {
	if y.Type != tree.NamespaceType {
		return fmt.Errorf("split export requires a namespace root")
	}
	if fi, err := os.Stat(dir); err != nil {
		return fmt.Errorf("error writing to %s: %w", dir, err)
	} else if !fi.IsDir() {
		return fmt.Errorf("error writing to %s: not a directory", dir)
	}
	suffix := FormatFromOpts(opts...).Suffix()
	loose := tree.NewNamespace()
	for i, f := range y.Fields {
		c := y.Values[i]
		if c.Type == tree.LeafType {
			if err := loose.SetLeaf([]string{f}, c.String); err != nil {
				return err
			}
			continue
		}
		if err := WriteFile(c, filepath.Join(dir, f+suffix), opts...); err != nil {
			return err
		}
	}
	if len(loose.Fields) != 0 {
		return WriteFile(loose, filepath.Join(dir, rootFile+suffix), opts...)
	}
	return nil
}
