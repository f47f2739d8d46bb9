package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fablecraft/langman/export"
)

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: view takes at most one key argument", cli.ErrUsage)
	}
	mgr, err := cfg.open()
	if err != nil {
		return err
	}
	node := mgr.Doc()
	if len(args) == 1 {
		node, err = mgr.Lookup(args[0])
		if err != nil {
			return err
		}
	}
	var opts []export.EncodeOption
	if cfg.colorize(cc.Out) {
		opts = append(opts, export.EncodeColors(export.NewColors()))
	}
	return export.Encode(node, cc.Out, opts...)
}
