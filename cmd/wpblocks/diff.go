package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	blockutil "github.com/arraypress/wp-block-utils"
)

type DiffConfig struct {
	*MainConfig
	Diff       *cli.Command
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	before, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	after, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[1], err)
	}
	if cfg.MainConfig.useColor(cc.Out) {
		color.NoColor = false
	}
	_, err = fmt.Fprintln(cc.Out, blockutil.DiffPretty(string(before), string(after)))
	return err
}
