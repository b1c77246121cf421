// Package debug provides env-gated trace logging for the merge engine.
// Set VCMI_DEBUG_MERGE=1 (etc.) to enable a channel.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge    bool
	Diff     bool
	Validate bool
	Assemble bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("VCMI_DEBUG_MERGE")
	d.Diff = boolEnv("VCMI_DEBUG_DIFF")
	d.Validate = boolEnv("VCMI_DEBUG_VALIDATE")
	d.Assemble = boolEnv("VCMI_DEBUG_ASSEMBLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Diff() bool {
	return d.Diff
}
func Validate() bool {
	return d.Validate
}
func Assemble() bool {
	return d.Assemble
}
