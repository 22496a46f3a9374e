package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "wpblocks").
		WithSynopsis("wpblocks [opts] command [opts]").
		WithDescription("wpblocks is a tool for working with parsed block-tree dumps.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wpMain(cfg, cc, args)
		}).
		WithSubs(
			FindCommand(cfg),
			CountCommand(cfg),
			FilterCommand(cfg),
			StatsCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg))
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("find").
		WithAliases("f").
		WithSynopsis("find [-class|-e] PATTERN [files]").
		WithDescription("List blocks matching a name pattern, class token or expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("count").
		WithAliases("c").
		WithSynopsis("count [files]").
		WithDescription("Tally block usage per name, most used first").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return count(cfg, cc, args)
		})
	cfg.Count = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("filter").
		WithSynopsis("filter PATTERN [files]").
		WithDescription("Remove matching blocks, subtrees included, and emit the rest").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("stats").
		WithSynopsis("stats [files]").
		WithDescription("Summarize a block tree: totals, depth, distinct names").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
	cfg.Stats = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("Pretty-print a block tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff FILE1 FILE2").
		WithDescription("Character diff between two serialized documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
