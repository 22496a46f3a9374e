package blockutil

import (
	"sort"

	"github.com/arraypress/wp-block-utils/block"
)

// Stats summarizes block usage over one tree.
type Stats struct {
	Total    int // all blocks, freeform included
	Named    int
	Freeform int
	Distinct int // distinct non-empty names
	MaxDepth int // 1 for a flat tree, 0 for an empty one
	Counts   NameCounts
}

// Collect gathers usage statistics over the tree.
func Collect(blocks []*block.Block) Stats {
	st := Stats{Counts: CountByName(blocks)}
	st.Distinct = len(st.Counts)
	st.Named = st.Counts.Total()
	Walk(blocks, func(b *block.Block, depth int) error {
		st.Total++
		if b.Name == "" {
			st.Freeform++
		}
		if depth+1 > st.MaxDepth {
			st.MaxDepth = depth + 1
		}
		return nil
	})
	return st
}

// Unregistered returns the distinct block names used in the tree that the
// registry does not know about, sorted.
func Unregistered(blocks []*block.Block, reg Registry) []string {
	var res []string
	for _, nc := range CountByName(blocks) {
		if !reg.IsRegistered(nc.Name) {
			res = append(res, nc.Name)
		}
	}
	sort.Strings(res)
	return res
}
