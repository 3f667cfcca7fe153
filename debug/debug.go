// Package debug provides env-gated diagnostics and human-readable tree
// dumps. It consumes only the read contract of the tree, so it works the
// same on read-only nodes.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Query bool
	Codec bool
}

var d *debug

func init() {
	d = &debug{}
	d.Query = boolEnv("SHARD_DEBUG_QUERY")
	d.Codec = boolEnv("SHARD_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Query() bool {
	return d.Query
}
func Codec() bool {
	return d.Codec
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
