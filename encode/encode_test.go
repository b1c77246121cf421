package encode

import (
	"testing"

	"github.com/jeyms233/vcmi/dom"
)

func TestJSONCompact(t *testing.T) {
	tests := []struct {
		name string
		node *dom.Node
		want string
	}{
		{"null", dom.Null(), `null`},
		{"bool", dom.NewBool(true), `true`},
		{"integer", dom.NewInteger(-42), `-42`},
		{"float", dom.NewFloat(1.5), `1.5`},
		{"whole float keeps point", dom.NewFloat(2), `2.0`},
		{"string", dom.NewString("hi"), `"hi"`},
		{"string escapes", dom.NewString("a\"b\\c\nd\x01"), `"a\"b\\c\nd\u0001"`},
		{"empty vector", dom.FromSlice(nil), `[]`},
		{"empty struct", dom.FromMap(nil), `{}`},
		{
			"vector",
			dom.FromSlice([]*dom.Node{dom.NewInteger(1), dom.NewString("x")}),
			`[1,"x"]`,
		},
		{
			"struct keys sorted",
			dom.FromMap(map[string]*dom.Node{
				"b": dom.NewInteger(2),
				"a": dom.NewInteger(1),
			}),
			`{"a":1,"b":2}`,
		},
		{
			"nested",
			dom.FromMap(map[string]*dom.Node{
				"v": dom.FromSlice([]*dom.Node{dom.Null(), dom.NewBool(false)}),
			}),
			`{"v":[null,false]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JSON(tt.node, true); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestJSONPretty(t *testing.T) {
	node := dom.FromMap(map[string]*dom.Node{
		"list": dom.FromSlice([]*dom.Node{dom.NewInteger(1), dom.NewInteger(2)}),
		"obj": dom.FromMap(map[string]*dom.Node{
			"x": dom.NewInteger(1),
			"y": dom.NewInteger(2),
		}),
	})
	want := `{
  "list": [1, 2],
  "obj": {
    "x": 1,
    "y": 2
  }
}`
	if got := JSON(node, false); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCompactSubtreeInlined(t *testing.T) {
	// a single-entry struct is compact and stays on one line in pretty mode
	node := dom.FromMap(map[string]*dom.Node{
		"a": dom.NewInteger(1),
	})
	if got := JSON(node, false); got != `{"a": 1}` {
		t.Errorf("got %s", got)
	}
}
