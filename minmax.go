package vcmi

import (
	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/schema"
)

// Minimize strips entries whose value equals the schema's declared
// default for that field, recursively. The node must already validate
// against the schema; behavior on a non-conforming node is undefined.
func Minimize(node *dom.Node, reg *schema.Registry, uri string) error {
	sc, err := reg.Schema(uri)
	if err != nil {
		return err
	}
	return doMinimize(node, sc)
}

// Maximize is the inverse of Minimize: wherever a field the schema
// declares a default for is absent, the default is inserted.
func Maximize(node *dom.Node, reg *schema.Registry, uri string) error {
	sc, err := reg.Schema(uri)
	if err != nil {
		return err
	}
	return doMaximize(node, sc)
}

func doMinimize(node *dom.Node, sc *schema.Schema) error {
	sc, err := sc.Deref()
	if err != nil {
		return err
	}
	switch node.Kind() {
	case dom.StructKind:
		obj := node.Struct()
		for _, key := range node.Keys() {
			prop, ok := sc.Property(key)
			if !ok {
				continue
			}
			prop, err := prop.Deref()
			if err != nil {
				return err
			}
			if d := prop.Default(); d != nil && dom.Equal(obj[key], d) {
				delete(obj, key)
				continue
			}
			if err := doMinimize(obj[key], prop); err != nil {
				return err
			}
		}
	case dom.VectorKind:
		items, ok := sc.Items()
		if !ok {
			return nil
		}
		for _, c := range node.VectorValue() {
			if err := doMinimize(c, items); err != nil {
				return err
			}
		}
	}
	return nil
}

func doMaximize(node *dom.Node, sc *schema.Schema) error {
	sc, err := sc.Deref()
	if err != nil {
		return err
	}
	switch node.Kind() {
	case dom.StructKind:
		obj := node.Struct()
		for _, key := range sc.Properties() {
			prop, _ := sc.Property(key)
			prop, err := prop.Deref()
			if err != nil {
				return err
			}
			child, present := obj[key]
			if !present {
				if d := prop.Default(); d != nil {
					obj[key] = d.Clone()
				}
				continue
			}
			if err := doMaximize(child, prop); err != nil {
				return err
			}
		}
	case dom.VectorKind:
		items, ok := sc.Items()
		if !ok {
			return nil
		}
		for _, c := range node.VectorValue() {
			if err := doMaximize(c, items); err != nil {
				return err
			}
		}
	}
	return nil
}
