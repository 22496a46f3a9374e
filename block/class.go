package block

import "strings"

// The className attribute holds a space-delimited token list, mirroring the
// DOM class attribute. Helpers below operate on exact tokens.

const classAttr = "className"

// Classes returns the className tokens in order. Runs of whitespace are
// treated as a single separator.
func (b *Block) Classes() []string {
	s, ok := b.StringAttr(classAttr)
	if !ok {
		return nil
	}
	return strings.Fields(s)
}

// HasClass reports exact token membership in the className attribute.
func (b *Block) HasClass(name string) bool {
	for _, c := range b.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// WithClass returns a deep copy of b with the class token appended. Adding
// a token that is already present returns a plain copy.
func (b *Block) WithClass(name string) *Block {
	if b.HasClass(name) {
		return b.Clone()
	}
	classes := append(b.Classes(), name)
	return b.WithAttr(classAttr, strings.Join(classes, " "))
}

// WithoutClass returns a deep copy of b with the class token removed.
// Removing the last token removes the className attribute entirely.
func (b *Block) WithoutClass(name string) *Block {
	classes := b.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return b.WithoutAttr(classAttr)
	}
	return b.WithAttr(classAttr, strings.Join(kept, " "))
}
