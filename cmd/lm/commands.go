package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fablecraft/langman/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{File: "lang.json"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "lm").
		WithSynopsis("lm [opts] command [opts]").
		WithDescription("lm manages localization keys for game content modules.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lmMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			SearchCommand(cfg),
			StatusCommand(cfg),
			StatsCommand(cfg),
			ExportCommand(cfg),
			ViewCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <key> [keys]").
		WithDescription("get leaf values by dotted key path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-n] <key=value> [key=value]...").
		WithDescription("create or overwrite leaf values, then export").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Del, "del").
		WithAliases("d", "rm").
		WithSynopsis("del [-n] <key> [keys]").
		WithDescription("delete leaves or namespaces, then export").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func SearchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SearchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Search, "search").
		WithAliases("se", "grep").
		WithSynopsis("search [-v] [-lim n] <pattern> | search -e <expr>").
		WithDescription("search key paths or values with a regexp or expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return search(cfg, cc, args)
		})
}

func StatusCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatusConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Status, "status").
		WithAliases("st").
		WithSynopsis("status [-patch] [file]").
		WithDescription("show changes a document represents relative to the source file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return status(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithSynopsis("stats").
		WithDescription("show key, namespace and pending-change counts").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
	})
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-o path] [-O format] [-split dir]").
		WithDescription("write the document to disk; alternate targets are dry runs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exportRun(cfg, cc, args)
		})
}

func (cfg *ExportConfig) fmtOpt(cc *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (formats: %v)", cli.ErrUsage, err, format.AllFormats())
	}
	cfg.OutFormat = &f
	return f, nil
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [key]").
		WithDescription("render the document, or the subtree at key, to the terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
