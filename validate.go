package vcmi

import (
	"github.com/jeyms233/vcmi/debug"
	"github.com/jeyms233/vcmi/diag"
	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/schema"
)

// Validate checks node against the schema named by uri, reporting
// findings through sink under the given label. It returns whether the
// node conforms.
func Validate(node *dom.Node, reg *schema.Registry, uri, label string, sink diag.Sink) bool {
	if debug.Validate() {
		debug.Logf("validate %s against %s\n", label, uri)
	}
	v := &schema.Validator{Reg: reg, Sink: sink}
	return v.Validate(node, uri, label)
}
