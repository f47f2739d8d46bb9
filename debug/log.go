package debug

import (
	"fmt"
	"os"

	"github.com/fablecraft/langman/export"
	"github.com/fablecraft/langman/tree"
)

// Logf writes a debug line to stderr, rendering document nodes in their
// canonical encoding.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *tree.Node:
			args[i] = export.MustString(x)
		case bool, string, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
