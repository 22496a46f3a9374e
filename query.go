package blockutil

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arraypress/wp-block-utils/block"
	"github.com/arraypress/wp-block-utils/debug"
)

// Query is a compiled expression predicate over a block. The expression
// sees three variables: name (string), attrs (map, empty when absent) and
// depth (int, 0 for top-level blocks).
type Query struct {
	src string
	prg *vm.Program
}

// CompileQuery compiles an expression such as
//
//	name == "core/heading" && attrs.level > 2
//
// Compilation errors are returned; evaluation errors and non-boolean
// results later count as non-matches.
func CompileQuery(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates the query against one block.
func (q *Query) Match(b *block.Block, depth int) bool {
	attrs := b.Attrs
	if attrs == nil {
		attrs = map[string]any{}
	}
	env := map[string]any{
		"name":  b.Name,
		"attrs": attrs,
		"depth": depth,
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		if debug.Query() {
			debug.Logf("query %q on %q: %v\n", q.src, b.Name, err)
		}
		return false
	}
	ok, isBool := res.(bool)
	return isBool && ok
}

// FindByExpr returns all blocks matching the query, in traversal order.
func FindByExpr(blocks []*block.Block, q *Query) []*block.Block {
	var res []*block.Block
	Walk(blocks, func(b *block.Block, depth int) error {
		if q.Match(b, depth) {
			res = append(res, b)
		}
		return nil
	})
	return res
}
