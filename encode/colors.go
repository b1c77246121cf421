package encode

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jeyms233/vcmi/dom"
)

// Colors maps node kinds to terminal color functions.
type Colors struct {
	Default  func(string, ...any) string
	FieldFn  func(string, ...any) string
	ValueFns map[dom.Kind]func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		Default:  colorDefault,
		FieldFn:  color.RGB(196, 96, 16).SprintfFunc(),
		ValueFns: map[dom.Kind]func(string, ...any) string{},
	}
	c.ValueFns[dom.NullKind] = color.RGB(168, 0, 196).SprintfFunc()
	c.ValueFns[dom.BoolKind] = color.CyanString
	c.ValueFns[dom.IntegerKind] = color.RGB(128, 216, 236).SprintfFunc()
	c.ValueFns[dom.FloatKind] = color.RGB(128, 216, 236).SprintfFunc()
	c.ValueFns[dom.StringKind] = color.RGB(8, 196, 16).SprintfFunc()
	return c
}

func (c *Colors) Value(k dom.Kind, s string) string {
	fn, ok := c.ValueFns[k]
	if !ok {
		return c.Default("%s", s)
	}
	return fn("%s", s)
}

func (c *Colors) Field(s string) string {
	return c.FieldFn("%s", s)
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}

// IsTerminal reports whether f is attached to a terminal, for deciding
// whether to colorize by default.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
