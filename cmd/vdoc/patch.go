package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jeyms233/vcmi"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchJSON := []byte(args[0])
	if cfg.File {
		patchJSON, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := cfg.readNode(arg)
		if err != nil {
			return err
		}
		patched, err := vcmi.ApplyJSONPatch(node, patchJSON)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.writeNode(cc.Out, patched); err != nil {
			return err
		}
	}
	return nil
}
