package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type SearchConfig struct {
	*MainConfig
	Search *cli.Command
	Vals   bool   `cli:"name=v aliases=values desc='match leaf values instead of key paths'"`
	Expr   string `cli:"name=e aliases=expr desc='boolean expression filter over key and value'"`
	Lim    int    `cli:"name=lim desc='limit the number of results (0 means no limit)'"`
}

func search(cfg *SearchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Search.Parse(cc, args)
	if err != nil {
		return err
	}
	mgr, err := cfg.open()
	if err != nil {
		return err
	}
	if cfg.Expr != "" {
		if len(args) != 0 {
			return fmt.Errorf("%w: -e takes no pattern argument", cli.ErrUsage)
		}
		matches, err := mgr.Filter(cfg.Expr)
		if err != nil {
			return err
		}
		for i, match := range matches {
			if cfg.Lim > 0 && i == cfg.Lim {
				break
			}
			fmt.Fprintf(cc.Out, "%s: %s\n", match.Key, match.Value)
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: search requires one pattern argument", cli.ErrUsage)
	}
	if cfg.Vals {
		matches, err := mgr.SearchValues(args[0])
		if err != nil {
			return err
		}
		for i, match := range matches {
			if cfg.Lim > 0 && i == cfg.Lim {
				break
			}
			fmt.Fprintf(cc.Out, "%s: %s\n", match.Key, match.Value)
		}
		return nil
	}
	keys, err := mgr.SearchKeys(args[0])
	if err != nil {
		return err
	}
	for i, key := range keys {
		if cfg.Lim > 0 && i == cfg.Lim {
			break
		}
		fmt.Fprintln(cc.Out, key)
	}
	return nil
}
