package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	blockutil "github.com/arraypress/wp-block-utils"
)

type CountConfig struct {
	*MainConfig
	Count      *cli.Command
}

func count(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		cfg.Count.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		blocks, err := cfg.MainConfig.loadArg(arg)
		if err != nil {
			return err
		}
		for _, nc := range blockutil.CountByName(blocks) {
			if _, err := fmt.Fprintf(cc.Out, "%6d  %s\n", nc.Count, nc.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
