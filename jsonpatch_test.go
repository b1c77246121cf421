package vcmi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyJSONPatch(t *testing.T) {
	node := mustParse(t, `{"name":"griffin","level":4,"upgrades":["royal griffin"]}`)
	patch := []byte(`[
		{"op": "replace", "path": "/level", "value": 5},
		{"op": "add", "path": "/upgrades/-", "value": "imperial griffin"},
		{"op": "remove", "path": "/name"}
	]`)
	got, err := ApplyJSONPatch(node, patch)
	require.NoError(t, err)
	wantEqual(t, got, mustParse(t, `{"level":5,"upgrades":["royal griffin","imperial griffin"]}`))
	// input untouched
	wantEqual(t, node, mustParse(t, `{"name":"griffin","level":4,"upgrades":["royal griffin"]}`))
}

func TestApplyJSONPatchErrors(t *testing.T) {
	node := mustParse(t, `{"a":1}`)
	_, err := ApplyJSONPatch(node, []byte(`{"op":"add"}`))
	require.Error(t, err)
	_, err = ApplyJSONPatch(node, []byte(`[{"op":"remove","path":"/missing"}]`))
	require.Error(t, err)
}
