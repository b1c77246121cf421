package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jeyms233/vcmi"
	"github.com/jeyms233/vcmi/dom"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	doc := dom.Null()
	for _, arg := range args {
		node, err := cfg.readNode(arg)
		if err != nil {
			if cfg.Permissive {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", arg, err)
				continue
			}
			return err
		}
		vcmi.Merge(doc, node)
	}
	return cfg.writeNode(cc.Out, doc)
}

func intersect(cfg *IntersectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Intersect.Parse(cc, args)
	if err != nil {
		return err
	}
	nodes := make([]*dom.Node, 0, len(args))
	for _, arg := range args {
		node, err := cfg.readNode(arg)
		if err != nil {
			return err
		}
		nodes = append(nodes, node)
	}
	return cfg.writeNode(cc.Out, vcmi.IntersectAll(nodes, cfg.Prune))
}
