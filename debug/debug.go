package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match  bool
	Filter bool
	Patch  bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("WPBLOCKS_DEBUG_MATCH")
	d.Filter = boolEnv("WPBLOCKS_DEBUG_FILTER")
	d.Patch = boolEnv("WPBLOCKS_DEBUG_PATCH")
	d.Query = boolEnv("WPBLOCKS_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Filter() bool {
	return d.Filter
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
