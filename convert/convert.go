// Package convert projects document nodes onto native Go values.
//
// Boolean and string targets map directly and panic on a kind mismatch,
// like the read-only accessors in package dom, except that a Null node
// converts to the target's zero value. Numeric targets accept either
// numeric representation and narrow or truncate to the requested type.
// Container targets convert recursively.
package convert

import (
	"encoding/json"

	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/encode"
)

// Numeric is the set of native number types a node can project onto.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bool reads a boolean node. Panics unless node is Bool or Null.
func Bool(node *dom.Node) bool {
	if node.IsNull() {
		return false
	}
	return node.BoolValue()
}

// String reads a string node. Panics unless node is String or Null.
func String(node *dom.Node) string {
	if node.IsNull() {
		return ""
	}
	return node.StringValue()
}

// Num reads a numeric node as T, truncating floats toward zero when T
// is an integer type. Panics unless node is numeric or Null.
func Num[T Numeric](node *dom.Node) T {
	if node.IsNull() {
		return 0
	}
	if node.Kind() == dom.IntegerKind {
		return T(node.IntegerValue())
	}
	return T(node.FloatValue())
}

// Vector converts a sequence node element by element, preserving order.
// Panics unless node is Vector or Null.
func Vector[T any](node *dom.Node, elem func(*dom.Node) T) []T {
	if node.IsNull() {
		return nil
	}
	src := node.VectorValue()
	out := make([]T, len(src))
	for i, c := range src {
		out[i] = elem(c)
	}
	return out
}

// Set converts a sequence node into a deduplicated set of elements.
// Panics unless node is Vector or Null.
func Set[T comparable](node *dom.Node, elem func(*dom.Node) T) map[T]struct{} {
	if node.IsNull() {
		return map[T]struct{}{}
	}
	src := node.VectorValue()
	out := make(map[T]struct{}, len(src))
	for _, c := range src {
		out[elem(c)] = struct{}{}
	}
	return out
}

// Map converts a mapping node value by value, preserving keys.
// Panics unless node is Struct or Null.
func Map[T any](node *dom.Node, elem func(*dom.Node) T) map[string]T {
	if node.IsNull() {
		return map[string]T{}
	}
	src := node.StructValue()
	out := make(map[string]T, len(src))
	for k, c := range src {
		out[k] = elem(c)
	}
	return out
}

// Raw unpacks a node into untyped Go values: nil, bool, int64, float64,
// string, []any, or map[string]any.
func Raw(node *dom.Node) any {
	switch node.Kind() {
	case dom.BoolKind:
		return node.BoolValue()
	case dom.IntegerKind:
		return node.IntegerValue()
	case dom.FloatKind:
		return node.FloatValue()
	case dom.StringKind:
		return node.StringValue()
	case dom.VectorKind:
		return Vector(node, Raw)
	case dom.StructKind:
		return Map(node, Raw)
	default:
		return nil
	}
}

// Decode unmarshals a node into an arbitrary Go value through its JSON
// form, honoring `json` struct tags on v.
func Decode(node *dom.Node, v any) error {
	return json.Unmarshal([]byte(encode.JSON(node, true)), v)
}
