package search

import (
	"regexp"

	"github.com/fablecraft/langman/tree"
)

// Match is one leaf hit of a value or filter query.
type Match struct {
	Key   string
	Value string
}

// Keys returns the key paths of all leaves whose joined key matches re,
// in traversal order.
func Keys(root *tree.Node, re *regexp.Regexp) []string {
	var res []string
	for k := range root.Leaves() {
		if re.MatchString(k) {
			res = append(res, k)
		}
	}
	return res
}

// Values returns all leaves whose value matches re, in traversal order.
func Values(root *tree.Node, re *regexp.Regexp) []Match {
	var res []Match
	for k, v := range root.Leaves() {
		if re.MatchString(v) {
			res = append(res, Match{Key: k, Value: v})
		}
	}
	return res
}
