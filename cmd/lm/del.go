package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/fablecraft/langman/diff"
)

type DelConfig struct {
	*MainConfig
	Del    *cli.Command
	DryRun bool `cli:"name=n desc='do not write, print pending changes instead'"`
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires at least one key", cli.ErrUsage)
	}
	mgr, err := cfg.open()
	if err != nil {
		return err
	}
	failed := 0
	for _, key := range args {
		if err := mgr.Delete(key); err != nil {
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
