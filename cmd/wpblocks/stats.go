package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	blockutil "github.com/arraypress/wp-block-utils"
)

type StatsConfig struct {
	*MainConfig
	Stats      *cli.Command
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := argsOrStdin(args)
	for i, arg := range files {
		blocks, err := cfg.MainConfig.loadArg(arg)
		if err != nil {
			return err
		}
		st := blockutil.Collect(blocks)
		fmt.Fprintf(cc.Out, "blocks:    %d\n", st.Total)
		fmt.Fprintf(cc.Out, "named:     %d\n", st.Named)
		fmt.Fprintf(cc.Out, "freeform:  %d\n", st.Freeform)
		fmt.Fprintf(cc.Out, "distinct:  %d\n", st.Distinct)
		fmt.Fprintf(cc.Out, "max depth: %d\n", st.MaxDepth)
		for _, nc := range st.Counts {
			fmt.Fprintf(cc.Out, "%6d  %s\n", nc.Count, nc.Name)
		}
		if i < len(files)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}
