package schema

import (
	"fmt"

	"github.com/jeyms233/vcmi/dom"
)

// Schema is a schema node together with the document it lives in, so
// that document-relative "$ref": "#/..." references stay resolvable.
type Schema struct {
	reg  *Registry
	root *dom.Node
	node *dom.Node
}

// Schema resolves uri into a schema with document context.
func (r *Registry) Schema(uri string) (*Schema, error) {
	ref, err := ParseRef(uri)
	if err != nil {
		return nil, err
	}
	root, err := r.Resolve(Ref{Scheme: ref.Scheme, Name: ref.Name})
	if err != nil {
		return nil, err
	}
	node := root
	if ref.Pointer != "" {
		node = root.LookupPointer(ref.Pointer)
		if node.IsNull() {
			return nil, fmt.Errorf("schema %q: no sub-schema at %q", ref.key(), ref.Pointer)
		}
	}
	return &Schema{reg: r, root: root, node: node}, nil
}

func (s *Schema) Node() *dom.Node { return s.node }

// field is Lookup tolerating non-mapping schema values, which a
// malformed schema document can contain anywhere.
func field(n *dom.Node, key string) *dom.Node {
	if !n.IsStruct() {
		return dom.Empty()
	}
	return n.Lookup(key)
}

func (s *Schema) at(node *dom.Node) *Schema {
	return &Schema{reg: s.reg, root: s.root, node: node}
}

// Deref follows $ref chains. A ref starting with "#" resolves inside
// the current document; otherwise it is a full scheme:name#/pointer
// identifier resolved through the registry.
func (s *Schema) Deref() (*Schema, error) {
	cur := s
	for depth := 0; ; depth++ {
		if depth > refLimit {
			return nil, fmt.Errorf("$ref chain too deep")
		}
		ref := field(cur.node, "$ref")
		if !ref.IsString() {
			return cur, nil
		}
		uri := ref.StringValue()
		if len(uri) > 0 && uri[0] == '#' {
			target := cur.root.LookupPointer(uri[1:])
			if target.IsNull() {
				return nil, fmt.Errorf("$ref %q: not found", uri)
			}
			cur = cur.at(target)
			continue
		}
		next, err := cur.reg.Schema(uri)
		if err != nil {
			return nil, fmt.Errorf("$ref %q: %w", uri, err)
		}
		cur = next
	}
}

const refLimit = 32

// Default returns the schema's declared default value, or nil.
func (s *Schema) Default() *dom.Node {
	d := field(s.node, "default")
	if d.IsNull() {
		return nil
	}
	return d
}

// Property returns the sub-schema governing the named mapping key:
// an entry under "properties", else a struct-valued
// "additionalProperties".
func (s *Schema) Property(key string) (*Schema, bool) {
	p := field(field(s.node, "properties"), key)
	if !p.IsNull() {
		return s.at(p), true
	}
	ap := field(s.node, "additionalProperties")
	if ap.IsStruct() {
		return s.at(ap), true
	}
	return nil, false
}

// Items returns the sub-schema governing sequence elements.
func (s *Schema) Items() (*Schema, bool) {
	it := field(s.node, "items")
	if it.IsNull() {
		return nil, false
	}
	return s.at(it), true
}

// Properties lists the keys the schema declares under "properties".
func (s *Schema) Properties() []string {
	p := field(s.node, "properties")
	if !p.IsStruct() {
		return nil
	}
	return p.Keys()
}

// Required lists the keys the schema requires on a mapping.
func (s *Schema) Required() []string {
	req := field(s.node, "required")
	if !req.IsVector() {
		return nil
	}
	out := make([]string, 0, req.Len())
	for _, c := range req.VectorValue() {
		if c.IsString() {
			out = append(out, c.StringValue())
		}
	}
	return out
}
