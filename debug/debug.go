package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load   bool
	Diff   bool
	Export bool
	Search bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("LM_DEBUG_LOAD")
	d.Diff = boolEnv("LM_DEBUG_DIFF")
	d.Export = boolEnv("LM_DEBUG_EXPORT")
	d.Search = boolEnv("LM_DEBUG_SEARCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Diff() bool {
	return d.Diff
}
func Export() bool {
	return d.Export
}
func Search() bool {
	return d.Search
}
