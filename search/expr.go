package search

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/fablecraft/langman/tree"
)

type leafEnv struct {
	Key   string `expr:"key"`
	Value string `expr:"value"`
}

// Filter returns all leaves for which the boolean expression src holds.
// The expression sees each leaf as `key` and `value` strings.
func Filter(root *tree.Node, src string) ([]Match, error) {
	prog, err := expr.Compile(src, expr.Env(leafEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling filter %q: %w", src, err)
	}
	var res []Match
	for k, v := range root.Leaves() {
		out, err := expr.Run(prog, leafEnv{Key: k, Value: v})
		if err != nil {
			return nil, fmt.Errorf("error evaluating filter at %q: %w", k, err)
		}
		if out.(bool) {
			res = append(res, Match{Key: k, Value: v})
		}
	}
	return res, nil
}
