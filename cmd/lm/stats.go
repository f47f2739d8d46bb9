package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type StatsConfig struct {
	*MainConfig
	Stats *cli.Command
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: stats takes no arguments", cli.ErrUsage)
	}
	mgr, err := cfg.open()
	if err != nil {
		return err
	}
	s := mgr.Stats()
	fmt.Fprintf(cc.Out, "keys:       %d\n", s.TotalKeys)
	fmt.Fprintf(cc.Out, "namespaces: %d\n", s.Namespaces)
	fmt.Fprintf(cc.Out, "pending:    %d added, %d modified, %d deleted\n",
		len(s.Pending.Added), len(s.Pending.Modified), len(s.Pending.Deleted))
	return nil
}
