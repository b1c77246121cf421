// Package vcmi implements the structural algebra over document trees:
// destructive and copying merge, inheritance composition, intersection,
// difference, schema-relative minimize/maximize, validation, and
// assembly of a resolved document from an ordered list of sources.
package vcmi

import (
	"github.com/jeyms233/vcmi/debug"
	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/encode"
)

type mergeConfig struct {
	ignoreOverride bool
	copyMeta       bool
}

// MergeOption adjusts how the merge walks the two trees.
type MergeOption func(*mergeConfig)

// IgnoreOverride disables the override flag, so flagged source subtrees
// merge field by field like any other.
func IgnoreOverride(v bool) MergeOption {
	return func(c *mergeConfig) { c.ignoreOverride = v }
}

// CopyMeta stamps the source provenance onto every destination node the
// merge touches.
func CopyMeta(v bool) MergeOption {
	return func(c *mergeConfig) { c.copyMeta = v }
}

// Merge layers source over dest in place and consumes source, leaving
// it empty. Mappings merge key by key, with a null source value
// deleting the destination key; sequences merge element by element,
// extending dest when source is longer; anything else, and any source
// subtree carrying the override flag, replaces the destination
// wholesale. A null source at the top level leaves dest unchanged.
func Merge(dest, source *dom.Node, opts ...MergeOption) {
	var cfg mergeConfig
	for _, o := range opts {
		o(&cfg)
	}
	doMerge(dest, source, cfg)
	source.Clear()
}

// MergeCopy is Merge over a duplicate of source, for callers that need
// to merge the same fragment into several destinations.
func MergeCopy(dest, source *dom.Node, opts ...MergeOption) {
	var cfg mergeConfig
	for _, o := range opts {
		o(&cfg)
	}
	doMerge(dest, source.Clone(), cfg)
}

// Inherit resolves descendant against base: base supplies defaults,
// descendant's own fields win. Descendant is rewritten in place to the
// resolved document; base is untouched. Override flags in descendant
// are ignored and provenance follows the winning fragment.
func Inherit(descendant, base *dom.Node) {
	resolved := base.Clone()
	Merge(resolved, descendant, IgnoreOverride(true), CopyMeta(true))
	descendant.Swap(resolved)
}

func doMerge(dest, source *dom.Node, cfg mergeConfig) {
	if debug.Merge() {
		debug.Logf("merge %s into %s\n", encode.JSON(source, true), encode.JSON(dest, true))
	}
	if source.IsNull() {
		// deletion intent, handled by the enclosing mapping walk; a
		// bare null source leaves dest unchanged
		return
	}
	srcMeta := source.Meta
	recurse := cfg.ignoreOverride || !source.HasFlag(dom.OverrideFlag)
	switch {
	case dest.IsStruct() && source.IsStruct() && recurse:
		obj := dest.Struct()
		for _, key := range source.Keys() {
			sv := source.StructValue()[key]
			if sv.IsNull() {
				delete(obj, key)
				continue
			}
			doMerge(dest.Field(key), sv, cfg)
		}
	case dest.IsVector() && source.IsVector() && recurse:
		dv := dest.Vector()
		sv := source.VectorValue()
		n := min(len(*dv), len(sv))
		for i := 0; i < n; i++ {
			doMerge((*dv)[i], sv[i], cfg)
		}
		*dv = append(*dv, sv[n:]...)
	default:
		dest.Swap(source)
	}
	if cfg.copyMeta {
		dest.Meta = srcMeta
	}
}
