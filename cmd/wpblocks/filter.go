package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	blockutil "github.com/arraypress/wp-block-utils"
	"github.com/arraypress/wp-block-utils/block"
)

type FilterConfig struct {
	Patch string `cli:"name=patch desc='json merge patch to apply to matching blocks instead of removing them'"`

	*MainConfig
	Filter     *cli.Command
}

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires a pattern", cli.ErrUsage)
	}
	pattern := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		blocks, err := cfg.MainConfig.loadArg(arg)
		if err != nil {
			return err
		}
		if cfg.Patch != "" {
			blocks, err = blockutil.PatchAttrs(blocks, pattern, []byte(cfg.Patch))
			if err != nil {
				return err
			}
		} else {
			blocks = blockutil.FilterOut(blocks, pattern)
		}
		if err := block.Encode(cc.Out, blocks); err != nil {
			return err
		}
	}
	return nil
}
