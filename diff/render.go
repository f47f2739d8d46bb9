package diff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Render writes a change set to w, one line per change, in the order
// added, modified, deleted. With colorize set, lines are colored and
// modified values get an inline character-level diff.
func Render(w io.Writer, c *Changes, colorize bool) error {
	for _, e := range c.Added {
		line := fmt.Sprintf("+ %s: %q", e.Key, e.To)
		if colorize {
			line = color.GreenString("%s", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, e := range c.Modified {
		var line string
		if colorize {
			line = color.YellowString("~ %s: ", e.Key) + inlineDiff(e.From, e.To)
		} else {
			line = fmt.Sprintf("~ %s: %q -> %q", e.Key, e.From, e.To)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, e := range c.Deleted {
		line := fmt.Sprintf("- %s: %q", e.Key, e.From)
		if colorize {
			line = color.RedString("%s", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func inlineDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
