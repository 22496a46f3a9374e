package blockutil

import (
	"github.com/arraypress/wp-block-utils/block"
	"github.com/arraypress/wp-block-utils/debug"
)

// FilterOut returns a new tree with every block matching pattern removed.
// A removed block takes its whole subtree with it; grandchildren are not
// promoted. Retained blocks are deep copies with recursively filtered
// children, in their original order.
func FilterOut(blocks []*block.Block, pattern string) []*block.Block {
	res := make([]*block.Block, 0, len(blocks))
	for _, b := range blocks {
		if MatchName(b.Name, pattern) {
			if debug.Filter() {
				debug.Logf("filter out %q\n", b.Name)
			}
			continue
		}
		nb := b.CloneShallow()
		nb.InnerBlocks = FilterOut(b.InnerBlocks, pattern)
		if len(nb.InnerBlocks) == 0 {
			nb.InnerBlocks = nil
		}
		res = append(res, nb)
	}
	return res
}

// Replace returns a new tree in which every block matching pattern is
// replaced by fn's result. fn receives a deep copy and may mutate it
// freely; returning nil removes the block and its subtree. Replacement
// blocks are emitted as-is, without descending into them. Non-matching
// blocks are copied and their children rewritten recursively.
func Replace(blocks []*block.Block, pattern string, fn func(*block.Block) *block.Block) []*block.Block {
	res := make([]*block.Block, 0, len(blocks))
	for _, b := range blocks {
		if MatchName(b.Name, pattern) {
			if nb := fn(b.Clone()); nb != nil {
				res = append(res, nb)
			}
			continue
		}
		nb := b.CloneShallow()
		nb.InnerBlocks = Replace(b.InnerBlocks, pattern, fn)
		if len(nb.InnerBlocks) == 0 {
			nb.InnerBlocks = nil
		}
		res = append(res, nb)
	}
	return res
}
