package vcmi

import (
	"github.com/jeyms233/vcmi/dom"
)

// Intersect builds the structure common to a and b without mutating
// either. Mappings intersect per shared key; any other pair yields the
// shared value when equal and Null otherwise. With pruneEmpty, keys
// whose intersection carries no base data are dropped too.
func Intersect(a, b *dom.Node, pruneEmpty bool) *dom.Node {
	if a.Kind() != b.Kind() {
		return dom.Null()
	}
	if a.IsStruct() {
		out := dom.Null()
		obj := out.Struct()
		for _, key := range a.Keys() {
			bv, ok := b.StructValue()[key]
			if !ok {
				continue
			}
			common := Intersect(a.Lookup(key), bv, pruneEmpty)
			if pruneEmpty && !common.ContainsBaseData() {
				continue
			}
			obj[key] = common
		}
		return out
	}
	if dom.Equal(a, b) {
		return a.Clone()
	}
	return dom.Null()
}

// IntersectAll folds Intersect across the inputs in order. An empty
// list yields Null; a single input yields itself, subject to pruning.
func IntersectAll(nodes []*dom.Node, pruneEmpty bool) *dom.Node {
	if len(nodes) == 0 {
		return dom.Null()
	}
	acc := Intersect(nodes[0], nodes[0], pruneEmpty)
	for _, n := range nodes[1:] {
		acc = Intersect(acc, n, pruneEmpty)
	}
	return acc
}
