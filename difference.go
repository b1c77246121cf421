package vcmi

import (
	"github.com/jeyms233/vcmi/debug"
	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/encode"
)

// Difference computes a minimal patch such that merging it into a copy
// of base reproduces node. Neither input is mutated. Keys present only
// in base come back as Null deletion markers; equal subtrees are
// omitted, except at the top level, where the unchanged value is
// returned because the top level cannot be omitted.
//
// Explicit Null values in node are indistinguishable from absent keys
// after a diff/merge round trip, since Null is the deletion marker.
func Difference(node, base *dom.Node) *dom.Node {
	if debug.Diff() {
		debug.Logf("diff %s against %s\n", encode.JSON(node, true), encode.JSON(base, true))
	}
	d := diffNodes(node, base)
	if d == nil {
		return node.Clone()
	}
	return d
}

// diffNodes returns nil when node equals base and the caller's context
// allows the entry to be omitted.
func diffNodes(node, base *dom.Node) *dom.Node {
	if dom.Equal(node, base) {
		return nil
	}
	if node.IsStruct() && base.IsStruct() {
		out := dom.Null()
		obj := out.Struct()
		for _, key := range base.Keys() {
			if _, ok := node.StructValue()[key]; !ok {
				obj[key] = dom.Null()
			}
		}
		for _, key := range node.Keys() {
			nv := node.StructValue()[key]
			bv, ok := base.StructValue()[key]
			if !ok {
				obj[key] = nv.Clone()
				continue
			}
			if d := diffNodes(nv, bv); d != nil {
				obj[key] = d
			}
		}
		return out
	}
	if node.IsVector() && base.IsVector() && node.Len() == base.Len() {
		out := dom.Null()
		vec := out.Vector()
		for i, nv := range node.VectorValue() {
			d := diffNodes(nv, base.VectorValue()[i])
			if d == nil {
				// Null is a no-op when merged element-wise
				d = dom.Null()
			}
			*vec = append(*vec, d)
		}
		return out
	}
	// wholesale replacement; the override flag keeps the merge from
	// recursing when node and base are containers of the same kind,
	// such as sequences of different lengths
	return node.Clone().SetFlag(dom.OverrideFlag)
}
