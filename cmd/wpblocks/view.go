package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	blockutil "github.com/arraypress/wp-block-utils"
	"github.com/arraypress/wp-block-utils/block"
)

type ViewConfig struct {
	Attrs bool `cli:"name=attrs desc='show full attribute maps'"`

	*MainConfig
	View       *cli.Command
}

type viewColors struct {
	name     func(a ...any) string
	freeform func(a ...any) string
	attrs    func(a ...any) string
}

func newViewColors(enabled bool) *viewColors {
	if !enabled {
		plain := fmt.Sprint
		return &viewColors{name: plain, freeform: plain, attrs: plain}
	}
	return &viewColors{
		name:     color.New(color.FgGreen, color.Bold).SprintFunc(),
		freeform: color.New(color.Faint).SprintFunc(),
		attrs:    color.New(color.FgCyan).SprintFunc(),
	}
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	colors := newViewColors(cfg.MainConfig.useColor(cc.Out))
	files := argsOrStdin(args)
	for i, arg := range files {
		blocks, err := cfg.MainConfig.loadArg(arg)
		if err != nil {
			return err
		}
		if err := viewTree(cfg, cc.Out, colors, blocks); err != nil {
			return err
		}
		if i < len(files)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}

func viewTree(cfg *ViewConfig, w io.Writer, colors *viewColors, blocks []*block.Block) error {
	return blockutil.Walk(blocks, func(b *block.Block, depth int) error {
		indent := strings.Repeat("  ", depth)
		if b.IsFreeform() {
			_, err := fmt.Fprintf(w, "%s%s\n", indent, colors.freeform("(freeform)"))
			return err
		}
		line := indent + colors.name(b.Name)
		if cfg.Attrs && len(b.Attrs) != 0 {
			d, err := json.Marshal(b.Attrs)
			if err != nil {
				return err
			}
			line += " " + colors.attrs(string(d))
		} else if classes := b.Classes(); len(classes) != 0 {
			line += " " + colors.attrs("."+strings.Join(classes, " ."))
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
}
