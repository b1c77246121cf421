package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jeyms233/vcmi"
	"github.com/jeyms233/vcmi/diag"
	"github.com/jeyms233/vcmi/schema"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Schema == "" || cfg.ID == "" {
		return fmt.Errorf("%w: validate requires -schema and -id", cli.ErrUsage)
	}
	ref, err := schema.ParseRef(cfg.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	data, err := os.ReadFile(cfg.Schema)
	if err != nil {
		return err
	}
	reg := schema.NewRegistry()
	if err := reg.AddJSON(ref.Scheme, ref.Name, data); err != nil {
		return err
	}
	var sink diag.Sink = diag.Console()
	if cfg.Log {
		sink = diag.NewLogSink(os.Stderr)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		node, err := cfg.readNode(arg)
		if err != nil {
			return err
		}
		if !vcmi.Validate(node, reg, cfg.ID, arg, sink) {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
