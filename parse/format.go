package parse

import (
	"errors"
	"fmt"
	"path"

	"github.com/jeyms233/vcmi/dom"
)

// Format selects the serialization a document is read from.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	}
	return "<unknown format>"
}

// FormatForPath picks the format from a file extension; JSON is the
// default for anything not recognizably YAML.
func FormatForPath(p string) Format {
	switch path.Ext(p) {
	case ".yaml", ".yml":
		return YAMLFormat
	default:
		return JSONFormat
	}
}

// As parses data in the given format.
func As(data []byte, f Format, opts ...Option) (*dom.Node, error) {
	switch f {
	case YAMLFormat:
		return YAML(data, opts...)
	default:
		return Parse(data, opts...)
	}
}
