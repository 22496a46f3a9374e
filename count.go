package blockutil

import (
	"sort"

	"github.com/arraypress/wp-block-utils/block"
)

// NameCount is one entry of a block usage tally.
type NameCount struct {
	Name  string
	Count int
}

// NameCounts is ordered by descending count, ties broken by first
// appearance in traversal order.
type NameCounts []NameCount

// Map converts the tally to an unordered map.
func (ncs NameCounts) Map() map[string]int {
	m := make(map[string]int, len(ncs))
	for _, nc := range ncs {
		m[nc.Name] = nc.Count
	}
	return m
}

// Total sums the counts, i.e. the number of named blocks tallied.
func (ncs NameCounts) Total() int {
	ttl := 0
	for _, nc := range ncs {
		ttl += nc.Count
	}
	return ttl
}

// CountByName tallies block usage per distinct non-empty name over the
// whole tree. Freeform blocks are skipped.
func CountByName(blocks []*block.Block) NameCounts {
	counts := map[string]int{}
	var order []string
	Walk(blocks, func(b *block.Block, _ int) error {
		if b.Name == "" {
			return nil
		}
		if counts[b.Name] == 0 {
			order = append(order, b.Name)
		}
		counts[b.Name]++
		return nil
	})
	res := make(NameCounts, 0, len(order))
	for _, name := range order {
		res = append(res, NameCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Count > res[j].Count
	})
	return res
}
