package blockutil

import (
	"strings"

	"github.com/arraypress/wp-block-utils/block"
)

// The host platform owns content parsing, rendering, serialization and the
// block-type registry. This module only delegates to them; their errors
// pass through unmodified. There is no ambient "current post": every
// wrapper takes its source text explicitly.

// Parser converts a serialized text blob into a block tree.
type Parser interface {
	ParseBlocks(raw string) ([]*block.Block, error)
}

// Renderer produces final markup for one block, including any dynamic
// server-side content.
type Renderer interface {
	RenderBlock(b *block.Block) (string, error)
}

// Serializer is the inverse of Parser. For any tree produced solely
// through this module's rewrites, serialization must round-trip
// semantically with the original text.
type Serializer interface {
	SerializeBlocks(blocks []*block.Block) (string, error)
}

// Registry is the platform's static block-type table, satisfied by
// *registry.Registry.
type Registry interface {
	IsRegistered(name string) bool
}

// RenderAll renders each top-level block and concatenates the results.
func RenderAll(r Renderer, blocks []*block.Block) (string, error) {
	var sb strings.Builder
	for _, b := range blocks {
		out, err := r.RenderBlock(b)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// HasBlock parses raw and reports whether any block matches pattern.
func HasBlock(p Parser, raw, pattern string) (bool, error) {
	blocks, err := p.ParseBlocks(raw)
	if err != nil {
		return false, err
	}
	return Contains(blocks, pattern), nil
}

// ReplaceIn parses raw, applies Replace with fn over matching blocks, and
// serializes the result back to text.
func ReplaceIn(p Parser, s Serializer, raw, pattern string, fn func(*block.Block) *block.Block) (string, error) {
	blocks, err := p.ParseBlocks(raw)
	if err != nil {
		return "", err
	}
	return s.SerializeBlocks(Replace(blocks, pattern, fn))
}

// RemoveFrom parses raw, drops every block matching pattern, subtree
// included, and serializes the rest back to text.
func RemoveFrom(p Parser, s Serializer, raw, pattern string) (string, error) {
	blocks, err := p.ParseBlocks(raw)
	if err != nil {
		return "", err
	}
	return s.SerializeBlocks(FilterOut(blocks, pattern))
}
