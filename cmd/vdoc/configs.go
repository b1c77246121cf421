package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/encode"
	"github.com/jeyms233/vcmi/parse"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='encode without whitespace'"`
	Color   bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	InFormat *parse.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) fmtFunc(fp **parse.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parse.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// formatFor picks the input format for one argument: explicit -I flag,
// then -j/-y, then the file extension.
func (cfg *MainConfig) formatFor(arg string) parse.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.J:
		return parse.JSONFormat
	case cfg.Y:
		return parse.YAMLFormat
	}
	return parse.FormatForPath(arg)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{
		encode.Compact(cfg.Compact),
	}
	if cfg.Color {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

// readNode loads one document argument; "-" reads stdin.
func (cfg *MainConfig) readNode(arg string) (*dom.Node, error) {
	var (
		data []byte
		err  error
	)
	if arg == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, err
	}
	node, err := parse.As(data, cfg.formatFor(arg), parse.WithMeta(arg))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func (cfg *MainConfig) writeNode(w io.Writer, node *dom.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.Compact {
		_, err := w.Write([]byte("\n"))
		return err
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Permissive bool `cli:"name=k aliases=keep-going desc='skip unreadable or malformed sources'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Text bool `cli:"name=text desc='render a textual diff instead of a patch document'"`

	Diff *cli.Command
}

type IntersectConfig struct {
	*MainConfig

	Prune bool `cli:"name=prune desc='drop keys whose intersection is empty'"`

	Intersect *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Schema string `cli:"name=schema desc='schema file to check against'"`
	ID     string `cli:"name=id desc='schema id, scheme:name[#/pointer]'"`
	Log    bool   `cli:"name=log desc='report findings as structured log records'"`

	Validate *cli.Command
}
