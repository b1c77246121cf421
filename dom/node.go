package dom

import (
	"fmt"
	"maps"
	"slices"
)

// OverrideFlag marks a node whose whole subtree replaces the destination
// during merges instead of being merged field by field.
const OverrideFlag = "override"

// Node is a variant document tree node. The zero value is a Null node.
//
// Besides its variant payload a node carries two sidecar attributes that do
// not participate in equality: Meta, a free-form provenance tag naming the
// source that produced the node's data, and a set of marker flags of which
// only OverrideFlag has defined merge behavior.
//
// Mutating accessors (Bool, Integer, Float, String, Vector, Struct) coerce
// the node to the requested kind, discarding existing content on kind
// change. Read-only accessors (BoolValue, IntegerValue, ...) panic on kind
// mismatch: calling one on a wrong-kinded node is a caller bug, not a
// recoverable condition.
//
// Nodes are not safe for concurrent mutation. A tree is owned by whoever
// holds its root; children are owned by their parent container.
type Node struct {
	kind Kind

	boolV  bool
	intV   int64
	floatV float64
	strV   string
	vec    []*Node
	obj    map[string]*Node

	// Meta is free-form provenance, e.g. the source fragment that last
	// set this node. Excluded from equality.
	Meta string

	flags map[string]struct{}
}

// emptyNode is returned by read-only lookups for absent children. Callers
// must treat it as immutable.
var emptyNode = &Node{}

// Empty returns the shared read-only Null node used by non-creating
// lookups to signal absence.
func Empty() *Node {
	return emptyNode
}

// Null returns a fresh Null node.
func Null() *Node { return &Node{} }

func NewBool(v bool) *Node {
	return &Node{kind: BoolKind, boolV: v}
}

func NewInteger(v int64) *Node {
	return &Node{kind: IntegerKind, intV: v}
}

func NewFloat(v float64) *Node {
	return &Node{kind: FloatKind, floatV: v}
}

func NewString(v string) *Node {
	return &Node{kind: StringKind, strV: v}
}

// FromSlice builds a Vector node owning the given children.
func FromSlice(children []*Node) *Node {
	return &Node{kind: VectorKind, vec: children}
}

// FromMap builds a Struct node owning the given children.
func FromMap(children map[string]*Node) *Node {
	if children == nil {
		children = map[string]*Node{}
	}
	return &Node{kind: StructKind, obj: children}
}

// Kind returns the node's current kind.
func (n *Node) Kind() Kind { return n.kind }

// SetKind coerces the node to kind k. Re-typing to the current kind keeps
// the content; any other re-typing discards it. Re-typing to Null clears
// unconditionally.
func (n *Node) SetKind(k Kind) {
	if k == n.kind && k != NullKind {
		return
	}
	n.boolV = false
	n.intV = 0
	n.floatV = 0
	n.strV = ""
	n.vec = nil
	n.obj = nil
	n.kind = k
	if k == StructKind {
		n.obj = map[string]*Node{}
	}
}

// Clear removes all data from the node and sets its kind to Null. Meta and
// flags are kept.
func (n *Node) Clear() { n.SetKind(NullKind) }

func (n *Node) IsNull() bool   { return n.kind == NullKind }
func (n *Node) IsNumber() bool { return n.kind == IntegerKind || n.kind == FloatKind }
func (n *Node) IsString() bool { return n.kind == StringKind }
func (n *Node) IsVector() bool { return n.kind == VectorKind }
func (n *Node) IsStruct() bool { return n.kind == StructKind }

// ContainsBaseData reports whether the node holds data that merging cannot
// extend: a non-null leaf, an override-flagged node, or a non-empty
// container. Such nodes are merge-terminal.
func (n *Node) ContainsBaseData() bool {
	if n.HasFlag(OverrideFlag) {
		return true
	}
	switch {
	case n.kind == NullKind:
		return false
	case n.kind.IsLeaf():
		return true
	case n.kind == VectorKind:
		return len(n.vec) > 0
	default:
		return len(n.obj) > 0
	}
}

// IsCompact reports whether the node serializes naturally on a single
// line: leaves, vectors of compact elements, and structs with at most one
// compact entry.
func (n *Node) IsCompact() bool {
	switch n.kind {
	case VectorKind:
		for _, c := range n.vec {
			if !c.IsCompact() {
				return false
			}
		}
		return true
	case StructKind:
		switch len(n.obj) {
		case 0:
			return true
		case 1:
			for _, c := range n.obj {
				return c.IsCompact()
			}
		}
		return false
	default:
		return true
	}
}

// BoolFromString interprets the node as a boolean: Bool nodes directly,
// String nodes holding "true" or "false" by their literal meaning. ok is
// false when no interpretation exists; the returned value is then
// meaningless.
func (n *Node) BoolFromString() (value, ok bool) {
	switch n.kind {
	case BoolKind:
		return n.boolV, true
	case StringKind:
		switch n.strV {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// Bool coerces the node to Bool and returns its payload for mutation.
func (n *Node) Bool() *bool {
	n.SetKind(BoolKind)
	return &n.boolV
}

// Integer coerces the node to Integer and returns its payload for mutation.
func (n *Node) Integer() *int64 {
	n.SetKind(IntegerKind)
	return &n.intV
}

// Float coerces the node to Float and returns its payload for mutation.
func (n *Node) Float() *float64 {
	n.SetKind(FloatKind)
	return &n.floatV
}

// String coerces the node to String and returns its payload for mutation.
func (n *Node) String() *string {
	n.SetKind(StringKind)
	return &n.strV
}

// Vector coerces the node to Vector and returns its elements for mutation.
func (n *Node) Vector() *[]*Node {
	n.SetKind(VectorKind)
	return &n.vec
}

// Struct coerces the node to Struct and returns its entries for mutation.
func (n *Node) Struct() map[string]*Node {
	n.SetKind(StructKind)
	return n.obj
}

// Append appends children to the node, coercing it to Vector first.
func (n *Node) Append(children ...*Node) *Node {
	n.SetKind(VectorKind)
	n.vec = append(n.vec, children...)
	return n
}

func (n *Node) BoolValue() bool {
	n.mustKind(BoolKind)
	return n.boolV
}

// IntegerValue requires the Integer sub-representation.
func (n *Node) IntegerValue() int64 {
	n.mustKind(IntegerKind)
	return n.intV
}

// FloatValue accepts either numeric sub-representation, widening an
// Integer payload to float64.
func (n *Node) FloatValue() float64 {
	switch n.kind {
	case FloatKind:
		return n.floatV
	case IntegerKind:
		return float64(n.intV)
	}
	panic(fmt.Sprintf("dom: number accessor on %s node", n.kind))
}

func (n *Node) StringValue() string {
	n.mustKind(StringKind)
	return n.strV
}

func (n *Node) VectorValue() []*Node {
	n.mustKind(VectorKind)
	return n.vec
}

func (n *Node) StructValue() map[string]*Node {
	n.mustKind(StructKind)
	return n.obj
}

func (n *Node) mustKind(k Kind) {
	if n.kind != k {
		panic(fmt.Sprintf("dom: %s accessor on %s node", k, n.kind))
	}
}

// Field returns the named child, coercing the node to Struct and creating
// a Null entry when the key is absent.
func (n *Node) Field(key string) *Node {
	obj := n.Struct()
	c, ok := obj[key]
	if !ok {
		c = &Node{}
		obj[key] = c
	}
	return c
}

// Lookup returns the named child of a Struct node, or the shared empty
// node when the key is absent. It never creates entries and panics when
// the node is not a Struct.
func (n *Node) Lookup(key string) *Node {
	c, ok := n.StructValue()[key]
	if !ok {
		return emptyNode
	}
	return c
}

// At returns the child at index i, coercing the node to Vector and growing
// it with Null entries up to i+1 when needed.
func (n *Node) At(i int) *Node {
	if i < 0 {
		panic(fmt.Sprintf("dom: negative index %d", i))
	}
	n.SetKind(VectorKind)
	for len(n.vec) <= i {
		n.vec = append(n.vec, &Node{})
	}
	return n.vec[i]
}

// Index returns the child at index i of a Vector node. The index must be
// in range.
func (n *Node) Index(i int) *Node {
	vec := n.VectorValue()
	if i < 0 || i >= len(vec) {
		panic(fmt.Sprintf("dom: index %d out of range [0,%d)", i, len(vec)))
	}
	return vec[i]
}

// Len returns the number of children of a container node, and 0 for
// leaves.
func (n *Node) Len() int {
	switch n.kind {
	case VectorKind:
		return len(n.vec)
	case StructKind:
		return len(n.obj)
	default:
		return 0
	}
}

// Keys returns the Struct keys in sorted order. Struct entries have no
// semantically significant order; sorted iteration keeps every walk over
// the tree deterministic.
func (n *Node) Keys() []string {
	if n.kind != StructKind {
		return nil
	}
	return slices.Sorted(maps.Keys(n.obj))
}

// SetMeta sets the provenance tag, recursively for the whole subtree when
// recursive is true.
func (n *Node) SetMeta(meta string, recursive bool) {
	if !recursive {
		n.Meta = meta
		return
	}
	_ = n.Visit(func(c *Node, isPost bool) (bool, error) {
		if !isPost {
			c.Meta = meta
		}
		return true, nil
	})
}

// HasFlag reports whether the marker flag is set on this node.
func (n *Node) HasFlag(flag string) bool {
	_, ok := n.flags[flag]
	return ok
}

// SetFlag adds a marker flag to the node.
func (n *Node) SetFlag(flag string) *Node {
	if n.flags == nil {
		n.flags = map[string]struct{}{}
	}
	n.flags[flag] = struct{}{}
	return n
}

// ClearFlag removes a marker flag from the node.
func (n *Node) ClearFlag(flag string) {
	delete(n.flags, flag)
}

// Flags returns the node's marker flags in sorted order.
func (n *Node) Flags() []string {
	if len(n.flags) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(n.flags))
}

// Clone returns a deep copy of the node, including Meta and flags.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.CloneTo(res)
	return res
}

// CloneTo deep-copies the node's content, Meta and flags into dst.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.kind = n.kind
	dst.boolV = n.boolV
	dst.intV = n.intV
	dst.floatV = n.floatV
	dst.strV = n.strV
	dst.Meta = n.Meta
	dst.vec = nil
	dst.obj = nil
	dst.flags = nil
	if n.flags != nil {
		dst.flags = maps.Clone(n.flags)
	}
	if n.vec != nil {
		dst.vec = make([]*Node, len(n.vec))
		for i, c := range n.vec {
			dst.vec[i] = c.Clone()
		}
	}
	if n.obj != nil {
		dst.obj = make(map[string]*Node, len(n.obj))
		for k, c := range n.obj {
			dst.obj[k] = c.Clone()
		}
	}
	return dst
}

// Swap exchanges the entire content of two nodes, sidecars included. It is
// the move primitive underlying destructive merges.
func (n *Node) Swap(o *Node) {
	*n, *o = *o, *n
}

// Visit walks the subtree, calling f before and after each node's
// children. Returning dive=false from the pre call skips the children.
// Struct children are visited in sorted key order.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.vec {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
		for _, k := range n.Keys() {
			if err := n.obj[k].Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}
