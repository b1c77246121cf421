package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jeyms233/vcmi/dom"
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

func TestScalars(t *testing.T) {
	if !Bool(mustParse(t, `true`)) {
		t.Errorf("bool")
	}
	if String(mustParse(t, `"hi"`)) != "hi" {
		t.Errorf("string")
	}
	if Num[int](mustParse(t, `7`)) != 7 {
		t.Errorf("int from integer")
	}
	if Num[int](mustParse(t, `2.9`)) != 2 {
		t.Errorf("truncation toward zero")
	}
	if Num[float64](mustParse(t, `7`)) != 7.0 {
		t.Errorf("float from integer")
	}
	if Num[uint8](mustParse(t, `200`)) != 200 {
		t.Errorf("narrow")
	}
}

func TestNullDefaults(t *testing.T) {
	null := dom.Null()
	if Bool(null) || String(null) != "" || Num[int](null) != 0 {
		t.Errorf("null scalar defaults")
	}
	if len(Vector(null, Num[int])) != 0 || len(Map(null, Num[int])) != 0 {
		t.Errorf("null container defaults")
	}
	if len(Set(null, String)) != 0 {
		t.Errorf("null set default")
	}
}

func TestVector(t *testing.T) {
	got := Vector(mustParse(t, `[1,2,3]`), Num[int])
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("diff:\n%s", diff)
	}
}

func TestVectorRejectsMapping(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("no panic")
		}
	}()
	Vector(mustParse(t, `{"a":1}`), Num[int])
}

func TestSet(t *testing.T) {
	got := Set(mustParse(t, `["a","b","a"]`), String)
	want := map[string]struct{}{"a": {}, "b": {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff:\n%s", diff)
	}
}

func TestMap(t *testing.T) {
	got := Map(mustParse(t, `{"x":1,"y":2}`), Num[int64])
	if diff := cmp.Diff(map[string]int64{"x": 1, "y": 2}, got); diff != "" {
		t.Errorf("diff:\n%s", diff)
	}
}

func TestNested(t *testing.T) {
	node := mustParse(t, `{"a":[1,2],"b":[3]}`)
	got := Map(node, func(c *dom.Node) []int { return Vector(c, Num[int]) })
	want := map[string][]int{"a": {1, 2}, "b": {3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff:\n%s", diff)
	}
}

func TestRaw(t *testing.T) {
	node := mustParse(t, `{"a":[1,2.5],"b":"x","c":true,"d":null}`)
	want := map[string]any{
		"a": []any{int64(1), 2.5},
		"b": "x",
		"c": true,
		"d": nil,
	}
	if diff := cmp.Diff(want, Raw(node)); diff != "" {
		t.Errorf("diff:\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	type creature struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
		Upg   []int  `json:"upgrades"`
	}
	node := mustParse(t, `{"name":"griffin","level":4,"upgrades":[5]}`)
	var c creature
	if err := Decode(node, &c); err != nil {
		t.Fatal(err)
	}
	want := creature{Name: "griffin", Level: 4, Upg: []int{5}}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("diff:\n%s", diff)
	}
}
