// Package schema stores named schema documents and validates document
// trees against them. Schemas are themselves document trees in a
// JSON-Schema-like dialect: type, properties, items, required, enum,
// minimum/maximum, additionalProperties, $ref, default, plus a "check"
// constraint holding an expression over the candidate value.
package schema

import (
	"fmt"
	"sync"

	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/parse"
)

// Registry maps schema identifiers to schema documents. The intended
// lifecycle is populate at startup, then read-only; reads take the
// read lock so late registration stays safe.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*dom.Node
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*dom.Node)}
}

// Add registers a schema document under scheme:name.
func (r *Registry) Add(scheme, name string, node *dom.Node) error {
	key := scheme + ":" + name
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[key]; exists {
		return fmt.Errorf("schema %q already registered", key)
	}
	r.schemas[key] = node
	return nil
}

// AddJSON parses a schema document and registers it.
func (r *Registry) AddJSON(scheme, name string, data []byte) error {
	node, err := parse.Parse(data)
	if err != nil {
		return fmt.Errorf("schema %s:%s: %w", scheme, name, err)
	}
	return r.Add(scheme, name, node)
}

// Resolve returns the schema (or sub-schema, when ref carries a
// pointer) named by ref.
func (r *Registry) Resolve(ref Ref) (*dom.Node, error) {
	r.mu.RLock()
	node, ok := r.schemas[ref.key()]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("schema %q not found", ref.key())
	}
	if ref.Pointer == "" {
		return node, nil
	}
	sub := node.LookupPointer(ref.Pointer)
	if sub.IsNull() {
		return nil, fmt.Errorf("schema %q: no sub-schema at %q", ref.key(), ref.Pointer)
	}
	return sub, nil
}

// ResolveURI parses uri and resolves it.
func (r *Registry) ResolveURI(uri string) (*dom.Node, error) {
	ref, err := ParseRef(uri)
	if err != nil {
		return nil, err
	}
	return r.Resolve(ref)
}

// Names lists registered scheme:name keys.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		out = append(out, k)
	}
	return out
}
