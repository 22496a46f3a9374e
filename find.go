package blockutil

import (
	"errors"
	"strings"

	"github.com/arraypress/wp-block-utils/block"
	"github.com/arraypress/wp-block-utils/debug"
)

// SkipChildren can be returned by a Walk callback to prune the current
// block's subtree without stopping the walk.
var SkipChildren = errors.New("skip children")

// MatchName reports whether a block name matches a pattern. A pattern
// ending in '*' is a prefix match on the part before the marker; any other
// pattern is an exact match. A nameless (freeform) block matches nothing,
// including a bare "*".
func MatchName(name, pattern string) bool {
	if name == "" {
		return false
	}
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		return strings.HasPrefix(name, pattern[:n-1])
	}
	return name == pattern
}

// FindByName returns all blocks whose name matches pattern, in traversal
// order, parents before children. Children are searched whether or not
// their parent matched.
func FindByName(blocks []*block.Block, pattern string) []*block.Block {
	if debug.Match() {
		debug.Logf("find by name %q over %d top-level blocks\n", pattern, len(blocks))
	}
	return findAll(blocks, func(b *block.Block) bool {
		return MatchName(b.Name, pattern)
	})
}

// FindByClass returns all blocks whose className attribute contains the
// exact class token, in traversal order.
func FindByClass(blocks []*block.Block, class string) []*block.Block {
	return findAll(blocks, func(b *block.Block) bool {
		return b.HasClass(class)
	})
}

// FindByAttr returns all blocks whose attribute key equals value, in
// traversal order. Comparison is ==, so it applies to scalar values.
func FindByAttr(blocks []*block.Block, key string, value any) []*block.Block {
	return findAll(blocks, func(b *block.Block) bool {
		v, ok := b.Attr(key)
		return ok && v == value
	})
}

// First returns the first block matching pattern in traversal order, or
// nil when there is none.
func First(blocks []*block.Block, pattern string) *block.Block {
	var res *block.Block
	Walk(blocks, func(b *block.Block, _ int) error {
		if MatchName(b.Name, pattern) {
			res = b
			return errStop
		}
		return nil
	})
	return res
}

// Contains reports whether any block in the tree matches pattern.
func Contains(blocks []*block.Block, pattern string) bool {
	return First(blocks, pattern) != nil
}

var errStop = errors.New("stop")

// Walk visits every block depth-first pre-order, calling fn with the block
// and its depth (top-level blocks are depth 0). Returning SkipChildren
// prunes the subtree; any other error stops the walk and is returned.
func Walk(blocks []*block.Block, fn func(b *block.Block, depth int) error) error {
	err := walk(blocks, 0, fn)
	if err == errStop {
		return nil
	}
	return err
}

func walk(blocks []*block.Block, depth int, fn func(b *block.Block, depth int) error) error {
	for _, b := range blocks {
		err := fn(b, depth)
		if err == SkipChildren {
			continue
		}
		if err != nil {
			return err
		}
		if err := walk(b.InnerBlocks, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

func findAll(blocks []*block.Block, pred func(*block.Block) bool) []*block.Block {
	var res []*block.Block
	Walk(blocks, func(b *block.Block, _ int) error {
		if pred(b) {
			res = append(res, b)
		}
		return nil
	})
	return res
}
