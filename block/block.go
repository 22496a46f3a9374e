// Package block contains the parsed block tree node model.
package block

// Block is one node of a parsed content tree. Name is empty for
// freeform/whitespace nodes produced by the platform parser. Attrs may be
// nil; readers treat a nil map as empty. InnerHTML and InnerContent are
// opaque markup owned by the platform. InnerBlocks ordering is significant
// and is preserved by every operation in this module.
type Block struct {
	Name         string
	Attrs        map[string]any
	InnerBlocks  []*Block
	InnerHTML    string
	InnerContent []*string
}

// Attr returns the raw attribute value for key.
func (b *Block) Attr(key string) (any, bool) {
	if b.Attrs == nil {
		return nil, false
	}
	v, ok := b.Attrs[key]
	return v, ok
}

// StringAttr returns the attribute value for key when it is a string.
func (b *Block) StringAttr(key string) (string, bool) {
	v, ok := b.Attr(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IntAttr returns the attribute value for key when it is numeric. JSON
// decoding yields float64, so both int and float64 are accepted.
func (b *Block) IntAttr(key string) (int, bool) {
	v, ok := b.Attr(key)
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		return int(x), true
	}
	return 0, false
}

// BoolAttr returns the attribute value for key when it is a bool.
func (b *Block) BoolAttr(key string) (bool, bool) {
	v, ok := b.Attr(key)
	if !ok {
		return false, false
	}
	x, ok := v.(bool)
	return x, ok
}

// SetAttr sets an attribute in place, creating the map on first write.
func (b *Block) SetAttr(key string, value any) {
	if b.Attrs == nil {
		b.Attrs = map[string]any{}
	}
	b.Attrs[key] = value
}

// WithAttr returns a deep copy of b with the attribute set. The receiver
// and anything it references are left untouched.
func (b *Block) WithAttr(key string, value any) *Block {
	nb := b.Clone()
	nb.SetAttr(key, value)
	return nb
}

// WithoutAttr returns a deep copy of b with the attribute removed.
func (b *Block) WithoutAttr(key string) *Block {
	nb := b.Clone()
	delete(nb.Attrs, key)
	return nb
}

// Clone deep-copies the block, its attributes, inner content and children.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	nb := b.CloneShallow()
	if b.InnerBlocks != nil {
		nb.InnerBlocks = make([]*Block, len(b.InnerBlocks))
		for i, c := range b.InnerBlocks {
			nb.InnerBlocks[i] = c.Clone()
		}
	}
	return nb
}

// CloneShallow deep-copies the block except for InnerBlocks, which is left
// nil. Tree rewrites use it to attach freshly built children.
func (b *Block) CloneShallow() *Block {
	nb := &Block{
		Name:      b.Name,
		InnerHTML: b.InnerHTML,
	}
	nb.Attrs = deepCopyMap(b.Attrs)
	if b.InnerContent != nil {
		nb.InnerContent = make([]*string, len(b.InnerContent))
		for i, p := range b.InnerContent {
			if p == nil {
				continue
			}
			s := *p
			nb.InnerContent[i] = &s
		}
	}
	return nb
}

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyAny(v)
	}
	return out
}

func deepCopyAny(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return deepCopyMap(x)
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = deepCopyAny(x[i])
		}
		return out
	default:
		// scalars
		return x
	}
}
