package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/fablecraft/langman/diff"
)

type SetConfig struct {
	*MainConfig
	Set    *cli.Command
	DryRun bool `cli:"name=n desc='do not write, print pending changes instead'"`
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires at least one key=value argument", cli.ErrUsage)
	}
	mgr, err := cfg.openOrCreate()
	if err != nil {
		return err
	}
	failed := 0
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "lm: %q is not of the form key=value\n", arg)
			failed++
			continue
		}
		if err := mgr.Set(key, val); err != nil {
			fmt.Fprintf(os.Stderr, "lm: %v\n", err)
			failed++
		}
	}
	if cfg.DryRun {
		if err := diff.Render(cc.Out, mgr.Pending(), cfg.colorize(cc.Out)); err != nil {
			return err
		}
	} else if err := mgr.Export(""); err != nil {
		return err
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
