package vcmi

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/encode"
	"github.com/jeyms233/vcmi/parse"
)

// ApplyJSONPatch applies an RFC 6902 patch document to node and returns
// the patched tree. Node is not mutated. Provenance and flags do not
// survive the round trip through JSON text.
func ApplyJSONPatch(node *dom.Node, patchJSON []byte) (*dom.Node, error) {
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply([]byte(encode.JSON(node, true)))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}
