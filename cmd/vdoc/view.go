package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := cfg.readNode(arg)
		if err != nil {
			return err
		}
		if err := cfg.writeNode(cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a pointer argument", cli.ErrUsage)
	}
	pointer := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := cfg.readNode(arg)
		if err != nil {
			return err
		}
		found := node.LookupPointer(pointer)
		if found.IsNull() {
			continue
		}
		if err := cfg.writeNode(cc.Out, found); err != nil {
			return err
		}
	}
	return nil
}
