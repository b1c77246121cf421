package dom

import (
	"reflect"
	"testing"
)

func TestSetKindCoercion(t *testing.T) {
	n := Null()
	*n.String() = "hello"
	if n.Kind() != StringKind || n.StringValue() != "hello" {
		t.Fatalf("got %s %q", n.Kind(), n.StringValue())
	}
	// re-typing to the same kind keeps content
	if *n.String() != "hello" {
		t.Errorf("idempotent re-type lost content")
	}
	// re-typing to another kind discards content
	*n.Integer() = 7
	if n.Kind() != IntegerKind || n.IntegerValue() != 7 {
		t.Fatalf("got %s %d", n.Kind(), n.IntegerValue())
	}
	*n.String() = ""
	if n.StringValue() != "" {
		t.Errorf("coercion kept stale content")
	}
	n.Clear()
	if !n.IsNull() {
		t.Errorf("Clear left kind %s", n.Kind())
	}
}

func TestMutatingAccessorDefaults(t *testing.T) {
	n := Null()
	if *n.Bool() != false {
		t.Errorf("Bool default")
	}
	if *Null().Integer() != 0 {
		t.Errorf("Integer default")
	}
	if *Null().Float() != 0.0 {
		t.Errorf("Float default")
	}
	if *Null().String() != "" {
		t.Errorf("String default")
	}
	if len(*Null().Vector()) != 0 {
		t.Errorf("Vector default")
	}
	if len(Null().Struct()) != 0 {
		t.Errorf("Struct default")
	}
}

func TestReadOnlyAccessorPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func(n *Node)
	}{
		{"bool on string", func(n *Node) { NewString("x").BoolValue() }},
		{"integer on float", func(n *Node) { NewFloat(1.5).IntegerValue() }},
		{"float on string", func(n *Node) { NewString("1.5").FloatValue() }},
		{"string on null", func(n *Node) { Null().StringValue() }},
		{"vector on struct", func(n *Node) { FromMap(nil).VectorValue() }},
		{"struct on vector", func(n *Node) { FromSlice(nil).StructValue() }},
		{"index out of range", func(n *Node) { FromSlice([]*Node{NewInteger(1)}).Index(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic")
				}
			}()
			tt.f(nil)
		})
	}
}

func TestFloatValueWidensInteger(t *testing.T) {
	if got := NewInteger(42).FloatValue(); got != 42.0 {
		t.Errorf("got %v", got)
	}
}

func TestFieldAutoCreate(t *testing.T) {
	n := Null()
	c := n.Field("a")
	if !c.IsNull() {
		t.Fatalf("created child kind %s", c.Kind())
	}
	*c.Integer() = 3
	if n.Lookup("a").IntegerValue() != 3 {
		t.Errorf("child not wired into parent")
	}
	if n.Lookup("missing") != Empty() {
		t.Errorf("absent key did not yield shared empty node")
	}
	if len(n.StructValue()) != 1 {
		t.Errorf("Lookup created an entry")
	}
}

func TestAtGrows(t *testing.T) {
	n := Null()
	*n.At(2).Integer() = 9
	vec := n.VectorValue()
	if len(vec) != 3 {
		t.Fatalf("len %d", len(vec))
	}
	if !vec[0].IsNull() || !vec[1].IsNull() {
		t.Errorf("fill entries not null")
	}
	if vec[2].IntegerValue() != 9 {
		t.Errorf("got %d", vec[2].IntegerValue())
	}
}

func TestContainsBaseData(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"null", Null(), false},
		{"bool", NewBool(false), true},
		{"integer", NewInteger(0), true},
		{"string", NewString(""), true},
		{"empty vector", FromSlice(nil), false},
		{"vector", FromSlice([]*Node{Null()}), true},
		{"empty struct", FromMap(nil), false},
		{"struct", FromMap(map[string]*Node{"a": Null()}), true},
		{"override null", Null().SetFlag(OverrideFlag), true},
		{"override empty struct", FromMap(nil).SetFlag(OverrideFlag), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.ContainsBaseData(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCompact(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"leaf", NewInteger(1), true},
		{"flat vector", FromSlice([]*Node{NewInteger(1), NewInteger(2)}), true},
		{
			"vector of big struct",
			FromSlice([]*Node{FromMap(map[string]*Node{"a": Null(), "b": Null()})}),
			false,
		},
		{"empty struct", FromMap(nil), true},
		{"one entry struct", FromMap(map[string]*Node{"a": NewInteger(1)}), true},
		{"two entry struct", FromMap(map[string]*Node{"a": Null(), "b": Null()}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsCompact(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		name   string
		node   *Node
		want   bool
		wantOK bool
	}{
		{"bool true", NewBool(true), true, true},
		{"bool false", NewBool(false), false, true},
		{"string true", NewString("true"), true, true},
		{"string false", NewString("false"), false, true},
		{"string other", NewString("yes"), false, false},
		{"null", Null(), false, false},
		{"integer", NewInteger(1), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.node.BoolFromString()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{NewInteger(1), NewString("x")}),
	})
	orig.Meta = "core"
	orig.SetFlag(OverrideFlag)

	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal")
	}
	if cp.Meta != "core" || !cp.HasFlag(OverrideFlag) {
		t.Errorf("clone dropped sidecars")
	}
	*cp.Field("a").At(0).Integer() = 99
	if orig.Lookup("a").Index(0).IntegerValue() != 1 {
		t.Errorf("clone shares children with original")
	}
}

func TestSwap(t *testing.T) {
	a := NewInteger(1)
	a.Meta = "a"
	b := NewString("s")
	b.Meta = "b"
	a.Swap(b)
	if a.StringValue() != "s" || a.Meta != "b" {
		t.Errorf("a after swap: %s %q", a.Kind(), a.Meta)
	}
	if b.IntegerValue() != 1 || b.Meta != "a" {
		t.Errorf("b after swap: %s %q", b.Kind(), b.Meta)
	}
}

func TestSetMetaRecursive(t *testing.T) {
	n := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{NewInteger(1)}),
	})
	n.SetMeta("mod", true)
	if n.Meta != "mod" || n.Lookup("a").Meta != "mod" || n.Lookup("a").Index(0).Meta != "mod" {
		t.Errorf("recursive meta not applied")
	}
	n.SetMeta("top", false)
	if n.Lookup("a").Meta != "mod" {
		t.Errorf("non-recursive meta touched children")
	}
}

func TestFlags(t *testing.T) {
	n := Null()
	if n.HasFlag(OverrideFlag) {
		t.Fatalf("fresh node has flag")
	}
	n.SetFlag(OverrideFlag)
	n.SetFlag("custom")
	if got := n.Flags(); !reflect.DeepEqual(got, []string{"custom", OverrideFlag}) {
		t.Errorf("flags %v", got)
	}
	n.ClearFlag("custom")
	if n.HasFlag("custom") {
		t.Errorf("ClearFlag had no effect")
	}
}

func TestVisit(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromSlice([]*Node{NewInteger(1)}),
		"a": NewString("x"),
	})
	var trace []string
	err := n.Visit(func(c *Node, isPost bool) (bool, error) {
		if isPost {
			trace = append(trace, "post:"+c.Kind().String())
		} else {
			trace = append(trace, "pre:"+c.Kind().String())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"pre:Struct",
		"pre:String", "post:String",
		"pre:Vector", "pre:Integer", "post:Integer", "post:Vector",
		"post:Struct",
	}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace %v", trace)
	}

	var skipped []string
	_ = n.Visit(func(c *Node, isPost bool) (bool, error) {
		if !isPost {
			skipped = append(skipped, c.Kind().String())
		}
		return c == n, nil
	})
	if !reflect.DeepEqual(skipped, []string{"Struct", "String", "Vector"}) {
		t.Errorf("dive=false descended: %v", skipped)
	}
}

func TestKeysSorted(t *testing.T) {
	n := FromMap(map[string]*Node{"b": Null(), "a": Null(), "c": Null()})
	if got := n.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("keys %v", got)
	}
}
