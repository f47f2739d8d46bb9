package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires at least one key", cli.ErrUsage)
	}
	mgr, err := cfg.open()
	if err != nil {
		return err
	}
	failed := 0
	for _, key := range args {
		v, err := mgr.Get(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lm: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintln(cc.Out, v)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
