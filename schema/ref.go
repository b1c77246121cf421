package schema

import (
	"fmt"
	"strings"
)

// Ref identifies a schema, or a sub-schema within one, using the
// syntax "scheme:name#/pointer". The pointer part is optional.
type Ref struct {
	Scheme  string
	Name    string
	Pointer string
}

// ParseRef parses a schema identifier.
func ParseRef(uri string) (Ref, error) {
	var r Ref
	rest := uri
	if i := strings.Index(rest, "#"); i >= 0 {
		r.Pointer = rest[i+1:]
		rest = rest[:i]
	}
	i := strings.Index(rest, ":")
	if i < 0 {
		return Ref{}, fmt.Errorf("schema ref %q: missing scheme", uri)
	}
	r.Scheme, r.Name = rest[:i], rest[i+1:]
	if r.Scheme == "" || r.Name == "" {
		return Ref{}, fmt.Errorf("schema ref %q: empty scheme or name", uri)
	}
	return r, nil
}

func (r Ref) String() string {
	s := r.Scheme + ":" + r.Name
	if r.Pointer != "" {
		s += "#" + r.Pointer
	}
	return s
}

func (r Ref) key() string {
	return r.Scheme + ":" + r.Name
}
