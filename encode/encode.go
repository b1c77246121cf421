// Package encode renders dom.Node trees as JSON text.
//
// Output is deterministic: struct keys are written in sorted order. In
// pretty mode, subtrees that report IsCompact are inlined on one line.
package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jeyms233/vcmi/dom"
)

type encState struct {
	compact bool
	indent  int
	colors  *Colors
}

func Encode(node *dom.Node, w io.Writer, opts ...Option) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.encode(node, w, 0); err != nil {
		return err
	}
	if !es.compact {
		return writeString(w, "\n")
	}
	return nil
}

// JSON renders the node as a JSON string; compact output carries no
// whitespace. This is the toJson surface of the document tree.
func JSON(node *dom.Node, compact bool) string {
	b := &strings.Builder{}
	es := &encState{indent: 2, compact: compact}
	// strings.Builder writes cannot fail
	if err := es.encode(node, b, 0); err != nil {
		panic(err)
	}
	return b.String()
}

// MustString renders the node in pretty form, panicking on writer errors.
func MustString(node *dom.Node) string {
	return JSON(node, false)
}

func (es *encState) encode(node *dom.Node, w io.Writer, depth int) error {
	switch node.Kind() {
	case dom.NullKind:
		return writeString(w, es.color(node.Kind(), "null"))
	case dom.BoolKind:
		return writeString(w, es.color(node.Kind(), strconv.FormatBool(node.BoolValue())))
	case dom.IntegerKind:
		return writeString(w, es.color(node.Kind(), strconv.FormatInt(node.IntegerValue(), 10)))
	case dom.FloatKind:
		return writeString(w, es.color(node.Kind(), formatFloat(node.FloatValue())))
	case dom.StringKind:
		return writeString(w, es.color(node.Kind(), quote(node.StringValue())))
	case dom.VectorKind:
		return es.encodeVector(node, w, depth)
	case dom.StructKind:
		return es.encodeStruct(node, w, depth)
	}
	return fmt.Errorf("unencodable kind %s", node.Kind())
}

func (es *encState) encodeVector(node *dom.Node, w io.Writer, depth int) error {
	vec := node.VectorValue()
	if len(vec) == 0 {
		return writeString(w, "[]")
	}
	inline := es.compact || node.IsCompact()
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i, c := range vec {
		if err := es.sep(w, i > 0, inline, depth+1); err != nil {
			return err
		}
		if err := es.encode(c, w, depth+1); err != nil {
			return err
		}
	}
	return es.close(w, "]", inline, depth)
}

func (es *encState) encodeStruct(node *dom.Node, w io.Writer, depth int) error {
	obj := node.StructValue()
	if len(obj) == 0 {
		return writeString(w, "{}")
	}
	inline := es.compact || node.IsCompact()
	if err := writeString(w, "{"); err != nil {
		return err
	}
	for i, k := range node.Keys() {
		if err := es.sep(w, i > 0, inline, depth+1); err != nil {
			return err
		}
		if err := writeString(w, es.fieldColor(quote(k))); err != nil {
			return err
		}
		colon := ": "
		if es.compact {
			colon = ":"
		}
		if err := writeString(w, colon); err != nil {
			return err
		}
		if err := es.encode(obj[k], w, depth+1); err != nil {
			return err
		}
	}
	return es.close(w, "}", inline, depth)
}

// sep writes the separator before an element: a comma for all but the
// first, then either a space (inline) or a newline plus indentation.
func (es *encState) sep(w io.Writer, comma, inline bool, depth int) error {
	s := ""
	if comma {
		s = ","
	}
	switch {
	case es.compact:
	case inline:
		if comma {
			s += " "
		}
	default:
		s += "\n" + strings.Repeat(" ", es.indent*depth)
	}
	return writeString(w, s)
}

func (es *encState) close(w io.Writer, bracket string, inline bool, depth int) error {
	if !es.compact && !inline {
		if err := writeString(w, "\n"+strings.Repeat(" ", es.indent*depth)); err != nil {
			return err
		}
	}
	return writeString(w, bracket)
}

func (es *encState) color(k dom.Kind, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Value(k, s)
}

func (es *encState) fieldColor(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Field(s)
}

// formatFloat keeps a decimal point (or exponent) in the output so the
// value reparses as a Float, not an Integer.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// no JSON representation exists
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func quote(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(b, `\u%04x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
