// Package parse builds dom.Node trees from serialized text.
//
// The JSON reader accepts a relaxed dialect: // and /* */ comments and
// trailing commas are tolerated, as config files in the wild use both. Parse is
// the strict entry point and fails on malformed input; BestEffort never
// fails, returning whatever tree could be recovered plus a validity flag.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jeyms233/vcmi/dom"
)

var ErrParse = errors.New("parse error")

// Parse reads a single document, failing on any syntax error.
func Parse(data []byte, opts ...Option) (*dom.Node, error) {
	node, errs := run(data, opts...)
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return node, nil
}

// BestEffort reads a single document, recovering from syntax errors where
// it can. The returned flag reports whether the input was syntactically
// valid; on false the tree holds whatever could be salvaged, possibly
// nothing.
func BestEffort(data []byte, opts ...Option) (*dom.Node, bool) {
	node, errs := run(data, opts...)
	return node, len(errs) == 0
}

func run(data []byte, opts ...Option) (*dom.Node, []error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	p := &parser{data: data}
	p.skipSpace()
	var node *dom.Node
	if p.pos >= len(p.data) {
		p.errorf("empty document")
		node = dom.Null()
	} else {
		node = p.value()
		p.skipSpace()
		if p.pos < len(p.data) {
			p.errorf("trailing content")
		}
	}
	if po.meta != "" {
		node.SetMeta(po.meta, true)
	}
	return node, p.errs
}

type parser struct {
	data []byte
	pos  int
	errs []error
}

func (p *parser) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errs = append(p.errs, fmt.Errorf("%w at offset %d: %s", ErrParse, p.pos, msg))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '/':
			for p.pos < len(p.data) && p.data[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '*':
			end := strings.Index(string(p.data[p.pos+2:]), "*/")
			if end < 0 {
				p.errorf("unterminated comment")
				p.pos = len(p.data)
				return
			}
			p.pos += 2 + end + 2
		default:
			return
		}
	}
}

func (p *parser) value() *dom.Node {
	if p.pos >= len(p.data) {
		p.errorf("unexpected end of input")
		return dom.Null()
	}
	switch c := p.data[p.pos]; {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"':
		s, ok := p.string()
		if !ok {
			return dom.Null()
		}
		return dom.NewString(s)
	case c == 't' || c == 'f' || c == 'n':
		return p.keyword()
	case c == '-' || c == '+' || (c >= '0' && c <= '9') || c == '.':
		return p.number()
	default:
		p.errorf("unexpected character %q", c)
		p.resync()
		return dom.Null()
	}
}

func (p *parser) object() *dom.Node {
	node := dom.FromMap(nil)
	obj := node.Struct()
	p.pos++ // '{'
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			p.errorf("unterminated object")
			return node
		}
		if p.data[p.pos] == '}' {
			p.pos++
			return node
		}
		if p.data[p.pos] != '"' {
			p.errorf("expected object key, got %q", p.data[p.pos])
			p.resyncElem()
			continue
		}
		key, ok := p.string()
		if !ok {
			p.resyncElem()
			continue
		}
		p.skipSpace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			p.errorf("expected ':' after key %q", key)
			p.resyncElem()
			continue
		}
		p.pos++
		p.skipSpace()
		val := p.value()
		if _, dup := obj[key]; dup {
			p.errorf("duplicate key %q", key)
		}
		obj[key] = val
		p.skipSpace()
		if p.pos < len(p.data) && p.data[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.pos < len(p.data) && p.data[p.pos] == '}' {
			continue
		}
		p.errorf("expected ',' or '}' in object")
		p.resyncElem()
	}
}

func (p *parser) array() *dom.Node {
	node := dom.FromSlice(nil)
	p.pos++ // '['
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			p.errorf("unterminated array")
			return node
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return node
		}
		node.Append(p.value())
		p.skipSpace()
		if p.pos < len(p.data) && p.data[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.pos < len(p.data) && p.data[p.pos] == ']' {
			continue
		}
		p.errorf("expected ',' or ']' in array")
		p.resyncElem()
	}
}

func (p *parser) keyword() *dom.Node {
	for _, kw := range []struct {
		text string
		node func() *dom.Node
	}{
		{"true", func() *dom.Node { return dom.NewBool(true) }},
		{"false", func() *dom.Node { return dom.NewBool(false) }},
		{"null", dom.Null},
	} {
		if strings.HasPrefix(string(p.data[p.pos:]), kw.text) {
			p.pos += len(kw.text)
			return kw.node()
		}
	}
	p.errorf("unrecognized keyword")
	p.resync()
	return dom.Null()
}

func (p *parser) number() *dom.Node {
	start := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	tok := string(p.data[start:p.pos])
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return dom.NewInteger(i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return dom.NewFloat(f)
	}
	p.errorf("malformed number %q", tok)
	return dom.Null()
}

func (p *parser) string() (string, bool) {
	b := &strings.Builder{}
	p.pos++ // '"'
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == '"':
			p.pos++
			return b.String(), true
		case c == '\\':
			p.pos++
			if p.pos >= len(p.data) {
				p.errorf("unterminated escape")
				return "", false
			}
			switch e := p.data[p.pos]; e {
			case '"', '\\', '/':
				b.WriteByte(e)
				p.pos++
			case 'b':
				b.WriteByte('\b')
				p.pos++
			case 'f':
				b.WriteByte('\f')
				p.pos++
			case 'n':
				b.WriteByte('\n')
				p.pos++
			case 'r':
				b.WriteByte('\r')
				p.pos++
			case 't':
				b.WriteByte('\t')
				p.pos++
			case 'u':
				p.pos++
				r, ok := p.unicodeEscape()
				if !ok {
					return "", false
				}
				b.WriteRune(r)
			default:
				p.errorf("invalid escape \\%c", e)
				p.pos++
			}
		case c == '\n':
			p.errorf("unterminated string")
			return "", false
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	p.errorf("unterminated string")
	return "", false
}

func (p *parser) unicodeEscape() (rune, bool) {
	hex4 := func() (rune, bool) {
		if p.pos+4 > len(p.data) {
			p.errorf("truncated \\u escape")
			return 0, false
		}
		v, err := strconv.ParseUint(string(p.data[p.pos:p.pos+4]), 16, 32)
		if err != nil {
			p.errorf("invalid \\u escape")
			return 0, false
		}
		p.pos += 4
		return rune(v), true
	}
	r, ok := hex4()
	if !ok {
		return 0, false
	}
	if utf16.IsSurrogate(r) && p.pos+6 <= len(p.data) &&
		p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u' {
		p.pos += 2
		r2, ok := hex4()
		if !ok {
			return 0, false
		}
		if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
			return dec, true
		}
		return utf8.RuneError, true
	}
	return r, true
}

// resyncElem resynchronizes inside a container, consuming the element
// separator so the scan continues with the next element.
func (p *parser) resyncElem() {
	p.resync()
	if p.pos < len(p.data) && p.data[p.pos] == ',' {
		p.pos++
	}
}

// resync skips forward to the next element boundary (',' or a closing
// bracket at the current nesting level) so that later elements can still
// be recovered after an error.
func (p *parser) resync() {
	depth := 0
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '"':
			p.string()
			continue
		case '{', '[':
			depth++
		case '}', ']':
			if depth == 0 {
				return
			}
			depth--
		case ',':
			if depth == 0 {
				return
			}
		}
		p.pos++
	}
}
