// Package blockutil provides convenience operations over parsed Gutenberg
// block trees: recursive search by block name or CSS class, trailing-*
// wildcard name matching, usage statistics, and bulk replace/remove
// rewrites. Parsing, rendering and serialization of post content are owned
// by the host platform and consumed behind the Parser, Renderer and
// Serializer interfaces.
//
// Every operation is a pure function: input trees are never mutated,
// traversal is depth-first pre-order with parents before children, and
// child ordering is preserved.
package blockutil
