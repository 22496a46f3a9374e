package block

import "strings"

// IsFreeform reports whether the block has no name, i.e. it holds raw
// markup or whitespace between named blocks.
func (b *Block) IsFreeform() bool {
	return b.Name == ""
}

// Namespace returns the "vendor" part of a "vendor/type" name, or "" when
// the name has no separator.
func (b *Block) Namespace() string {
	if i := strings.IndexByte(b.Name, '/'); i >= 0 {
		return b.Name[:i]
	}
	return ""
}

// Slug returns the "type" part of a "vendor/type" name. A name without a
// separator is returned whole.
func (b *Block) Slug() string {
	if i := strings.IndexByte(b.Name, '/'); i >= 0 {
		return b.Name[i+1:]
	}
	return b.Name
}
