package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	blockutil "github.com/arraypress/wp-block-utils"
	"github.com/arraypress/wp-block-utils/block"
)

type FindConfig struct {
	Class bool `cli:"name=class desc='treat PATTERN as a CSS class token'"`
	Expr  bool `cli:"name=e aliases=expr desc='treat PATTERN as an expression over name, attrs, depth'"`

	*MainConfig
	Find       *cli.Command
}

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires a pattern", cli.ErrUsage)
	}
	if cfg.Class && cfg.Expr {
		return fmt.Errorf("%w: -class and -e are mutually exclusive", cli.ErrUsage)
	}
	pattern := args[0]
	matcher, err := cfg.matcher(pattern)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		blocks, err := cfg.MainConfig.loadArg(arg)
		if err != nil {
			return err
		}
		if err := printMatches(cc.Out, matcher(blocks)); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *FindConfig) matcher(pattern string) (func([]*block.Block) []*block.Block, error) {
	switch {
	case cfg.Class:
		return func(blocks []*block.Block) []*block.Block {
			return blockutil.FindByClass(blocks, pattern)
		}, nil
	case cfg.Expr:
		q, err := blockutil.CompileQuery(pattern)
		if err != nil {
			return nil, err
		}
		return func(blocks []*block.Block) []*block.Block {
			return blockutil.FindByExpr(blocks, q)
		}, nil
	default:
		return func(blocks []*block.Block) []*block.Block {
			return blockutil.FindByName(blocks, pattern)
		}, nil
	}
}

func printMatches(w io.Writer, matches []*block.Block) error {
	for _, b := range matches {
		line := b.Name
		if len(b.Attrs) != 0 {
			d, err := json.Marshal(b.Attrs)
			if err != nil {
				return err
			}
			line += " " + string(d)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
