package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fablecraft/langman/diff"
	"github.com/fablecraft/langman/tree"
)

type StatusConfig struct {
	*MainConfig
	Status *cli.Command
	Patch  bool `cli:"name=patch desc='print the changes as a JSON merge patch'"`
}

// status reports the manager's pending changes, or, given a file
// argument, the changes that file represents relative to the document.
func status(cfg *StatusConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Status.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: status takes at most one file argument", cli.ErrUsage)
	}
	mgr, err := cfg.open()
	if err != nil {
		return err
	}
	baseline, current := mgr.Doc(), mgr.Doc()
	if len(args) == 1 {
		other, err := tree.Load(args[0])
		if err != nil {
			return err
		}
		current = other
	}
	if cfg.Patch {
		patch, err := diff.MergePatch(baseline, current)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", patch)
		return err
	}
	changes := diff.Diff(baseline, current)
	if changes.Empty() {
		_, err := fmt.Fprintln(cc.Out, "no pending changes")
		return err
	}
	return diff.Render(cc.Out, changes, cfg.colorize(cc.Out))
}
