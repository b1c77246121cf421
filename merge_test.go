package vcmi

import (
	"testing"

	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/encode"
	"github.com/jeyms233/vcmi/parse"
)

func mustParse(t *testing.T, s string) *dom.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func wantEqual(t *testing.T, got, want *dom.Node) {
	t.Helper()
	if !dom.Equal(got, want) {
		t.Errorf("got %s, want %s", encode.JSON(got, true), encode.JSON(want, true))
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name               string
		dest, source, want string
	}{
		{"merge and delete", `{"a":1,"b":2,"c":5}`, `{"b":3,"c":null,"d":4}`, `{"a":1,"b":3,"d":4}`},
		{"null source is a no-op", `{"a":1}`, `null`, `{"a":1}`},
		{"delete absent key", `{"a":1}`, `{"b":null}`, `{"a":1}`},
		{"scalar replaces scalar", `1`, `"x"`, `"x"`},
		{"kind mismatch replaces", `{"a":1}`, `[1]`, `[1]`},
		{"nested recursion", `{"a":{"x":1,"y":2}}`, `{"a":{"y":3}}`, `{"a":{"x":1,"y":3}}`},
		{"new subtree", `{}`, `{"a":{"b":1}}`, `{"a":{"b":1}}`},
		{"vectors element-wise", `[1,2,3]`, `[9,null]`, `[9,2,3]`},
		{"longer source extends", `[1]`, `[9,8,7]`, `[9,8,7]`},
		{"vector of mappings", `[{"a":1,"b":2}]`, `[{"b":3}]`, `[{"a":1,"b":3}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := mustParse(t, tt.dest)
			source := mustParse(t, tt.source)
			Merge(dest, source)
			wantEqual(t, dest, mustParse(t, tt.want))
			if !source.IsNull() {
				t.Errorf("source not consumed")
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	docs := []string{
		`{"a":1,"b":{"c":[1,2],"d":"x"}}`,
		`[1,[2,3],{"a":true}]`,
		`"scalar"`,
	}
	for _, doc := range docs {
		x := mustParse(t, doc)
		dest := x.Clone()
		Merge(dest, x.Clone())
		wantEqual(t, dest, x)
	}
}

func TestMergeOverride(t *testing.T) {
	dest := mustParse(t, `{"a":{"x":1,"y":2}}`)
	source := mustParse(t, `{"a":{"y":3}}`)
	source.Lookup("a").SetFlag(dom.OverrideFlag)
	Merge(dest, source)
	wantEqual(t, dest, mustParse(t, `{"a":{"y":3}}`))

	dest = mustParse(t, `{"a":{"x":1,"y":2}}`)
	source = mustParse(t, `{"a":{"y":3}}`)
	source.Lookup("a").SetFlag(dom.OverrideFlag)
	Merge(dest, source, IgnoreOverride(true))
	wantEqual(t, dest, mustParse(t, `{"a":{"x":1,"y":3}}`))
}

func TestMergeCopyMeta(t *testing.T) {
	dest := mustParse(t, `{"a":{"x":1}}`)
	source, err := parse.Parse([]byte(`{"a":{"x":2}}`), parse.WithMeta("mod/b.json"))
	if err != nil {
		t.Fatal(err)
	}
	Merge(dest, source, CopyMeta(true))
	if got := dest.LookupPointer("/a/x").Meta; got != "mod/b.json" {
		t.Errorf("meta %q", got)
	}
}

func TestMergeCopyLeavesSourceIntact(t *testing.T) {
	dest := mustParse(t, `{"a":1}`)
	source := mustParse(t, `{"b":{"c":2}}`)
	MergeCopy(dest, source)
	wantEqual(t, dest, mustParse(t, `{"a":1,"b":{"c":2}}`))
	wantEqual(t, source, mustParse(t, `{"b":{"c":2}}`))

	// the merged-in subtree must not alias source
	*dest.LookupPointer("/b/c").Integer() = 9
	wantEqual(t, source, mustParse(t, `{"b":{"c":2}}`))
}

func TestInherit(t *testing.T) {
	base := mustParse(t, `{"hp":30,"speed":9,"abilities":{"fly":true}}`)
	desc := mustParse(t, `{"hp":35,"abilities":{"fearless":true}}`)
	Inherit(desc, base)
	wantEqual(t, desc, mustParse(t, `{"hp":35,"speed":9,"abilities":{"fly":true,"fearless":true}}`))
	wantEqual(t, base, mustParse(t, `{"hp":30,"speed":9,"abilities":{"fly":true}}`))
}

func TestInheritIdentity(t *testing.T) {
	d := mustParse(t, `{"a":1,"b":[2]}`)
	Inherit(d, dom.Null())
	wantEqual(t, d, mustParse(t, `{"a":1,"b":[2]}`))

	b := mustParse(t, `{"a":1,"b":{"c":2}}`)
	d = b.Clone()
	Inherit(d, b)
	wantEqual(t, d, b)
}

func TestInheritIgnoresOverride(t *testing.T) {
	base := mustParse(t, `{"a":{"x":1,"y":2}}`)
	desc := mustParse(t, `{"a":{"y":3}}`)
	desc.Lookup("a").SetFlag(dom.OverrideFlag)
	Inherit(desc, base)
	wantEqual(t, desc, mustParse(t, `{"a":{"x":1,"y":3}}`))
}
