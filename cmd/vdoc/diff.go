package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jeyms233/vcmi"
	"github.com/jeyms233/vcmi/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	node, err := cfg.readNode(args[0])
	if err != nil {
		return err
	}
	base, err := cfg.readNode(args[1])
	if err != nil {
		return err
	}
	if cfg.Text {
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(
			encode.JSON(base, false),
			encode.JSON(node, false),
			false)
		_, err := cc.Out.Write([]byte(diffCfg.DiffPrettyText(diffs)))
		return err
	}
	return cfg.writeNode(cc.Out, vcmi.Difference(node, base))
}
