package schema

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/jeyms233/vcmi/convert"
	"github.com/jeyms233/vcmi/diag"
	"github.com/jeyms233/vcmi/dom"
)

// Validator checks document trees against registered schemas, sending
// findings to a diagnostic sink.
type Validator struct {
	Reg  *Registry
	Sink diag.Sink
}

// Validate checks node against the schema named by uri. Findings are
// reported through the sink with paths rooted at label. The result is
// true when no errors were found.
func (v *Validator) Validate(node *dom.Node, uri, label string) bool {
	sc, err := v.Reg.Schema(uri)
	if err != nil {
		v.report(node, label, "%v", err)
		return false
	}
	st := &checkState{v: v, ok: true}
	st.validate(node, sc, label)
	return st.ok
}

func (v *Validator) report(node *dom.Node, ptr, format string, args ...any) {
	v.Sink.Report(diag.Message{
		Severity: diag.Error,
		Pointer:  ptr,
		Meta:     node.Meta,
		Text:     fmt.Sprintf(format, args...),
	})
}

type checkState struct {
	v  *Validator
	ok bool
}

func (st *checkState) fail(node *dom.Node, ptr, format string, args ...any) {
	st.ok = false
	st.v.report(node, ptr, format, args...)
}

func (st *checkState) validate(node *dom.Node, sc *Schema, ptr string) {
	sc, err := sc.Deref()
	if err != nil {
		st.fail(node, ptr, "%v", err)
		return
	}
	if !sc.node.IsStruct() {
		return
	}
	if t := field(sc.node, "type"); t.IsString() {
		if !kindMatches(node.Kind(), t.StringValue()) {
			st.fail(node, ptr, "expected %s, found %s", t.StringValue(), node.Kind())
			return
		}
	}
	st.enum(node, sc, ptr)
	st.bounds(node, sc, ptr)
	st.check(node, sc, ptr)
	switch node.Kind() {
	case dom.StructKind:
		st.object(node, sc, ptr)
	case dom.VectorKind:
		st.array(node, sc, ptr)
	}
}

func kindMatches(k dom.Kind, typ string) bool {
	switch typ {
	case "null":
		return k == dom.NullKind
	case "boolean":
		return k == dom.BoolKind
	case "integer":
		return k == dom.IntegerKind
	case "number":
		return k == dom.IntegerKind || k == dom.FloatKind
	case "string":
		return k == dom.StringKind
	case "array":
		return k == dom.VectorKind
	case "object":
		return k == dom.StructKind
	}
	return false
}

func (st *checkState) enum(node *dom.Node, sc *Schema, ptr string) {
	options := field(sc.node, "enum")
	if !options.IsVector() {
		return
	}
	for _, opt := range options.VectorValue() {
		if dom.Equal(node, opt) {
			return
		}
	}
	st.fail(node, ptr, "value not in enum")
}

func (st *checkState) bounds(node *dom.Node, sc *Schema, ptr string) {
	if !node.IsNumber() {
		return
	}
	val := node.FloatValue()
	if min := field(sc.node, "minimum"); min.IsNumber() && val < min.FloatValue() {
		st.fail(node, ptr, "value %v below minimum %v", val, min.FloatValue())
	}
	if max := field(sc.node, "maximum"); max.IsNumber() && val > max.FloatValue() {
		st.fail(node, ptr, "value %v above maximum %v", val, max.FloatValue())
	}
}

// check evaluates a schema-supplied expression with the candidate
// bound as "value"; the expression must yield true.
func (st *checkState) check(node *dom.Node, sc *Schema, ptr string) {
	src := field(sc.node, "check")
	if !src.IsString() {
		return
	}
	prog, err := expr.Compile(src.StringValue(), expr.AsBool())
	if err != nil {
		st.fail(node, ptr, "bad check %q: %v", src.StringValue(), err)
		return
	}
	out, err := expr.Run(prog, map[string]any{"value": convert.Raw(node)})
	if err != nil {
		st.fail(node, ptr, "check %q: %v", src.StringValue(), err)
		return
	}
	if ok, _ := out.(bool); !ok {
		st.fail(node, ptr, "check %q failed", src.StringValue())
	}
}

func (st *checkState) object(node *dom.Node, sc *Schema, ptr string) {
	for _, key := range sc.Required() {
		if node.Lookup(key).IsNull() {
			st.fail(node, ptr, "missing required key %q", key)
		}
	}
	ap := field(sc.node, "additionalProperties")
	for _, key := range node.Keys() {
		child := node.Lookup(key)
		prop, ok := sc.Property(key)
		if ok {
			st.validate(child, prop, ptr+"/"+key)
			continue
		}
		if ap.Kind() == dom.BoolKind && !ap.BoolValue() {
			st.fail(child, ptr+"/"+key, "unknown key %q", key)
		}
	}
}

func (st *checkState) array(node *dom.Node, sc *Schema, ptr string) {
	items, ok := sc.Items()
	if !ok {
		return
	}
	for i, child := range node.VectorValue() {
		st.validate(child, items, fmt.Sprintf("%s/%d", ptr, i))
	}
}
