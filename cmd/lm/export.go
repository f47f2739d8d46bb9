package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fablecraft/langman/export"
	"github.com/fablecraft/langman/format"
)

type ExportConfig struct {
	*MainConfig
	Export *cli.Command
	Target string `cli:"name=o desc='target path (default the source file)'"`
	Split  string `cli:"name=split desc='write one file per top-level namespace into this directory'"`

	OutFormat *format.Format
}

func exportRun(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: export takes no arguments", cli.ErrUsage)
	}
	if cfg.Split != "" && cfg.Target != "" {
		return fmt.Errorf("%w: -split and -o are mutually exclusive", cli.ErrUsage)
	}
	mgr, err := cfg.open()
	if err != nil {
		return err
	}
	var opts []export.EncodeOption
	if cfg.OutFormat != nil {
		opts = append(opts, export.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.Split != "" {
		return mgr.ExportSplit(cfg.Split, opts...)
	}
	return mgr.Export(cfg.Target, opts...)
}
