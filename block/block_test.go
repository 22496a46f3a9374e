package block

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttrAccessors(t *testing.T) {
	b := &Block{
		Name: "core/heading",
		Attrs: map[string]any{
			"level":   float64(3),
			"anchor":  "intro",
			"dropCap": true,
		},
	}
	if v, ok := b.IntAttr("level"); !ok || v != 3 {
		t.Errorf("IntAttr(level) = %v, %v", v, ok)
	}
	if v, ok := b.StringAttr("anchor"); !ok || v != "intro" {
		t.Errorf("StringAttr(anchor) = %q, %v", v, ok)
	}
	if v, ok := b.BoolAttr("dropCap"); !ok || !v {
		t.Errorf("BoolAttr(dropCap) = %v, %v", v, ok)
	}
	if _, ok := b.Attr("missing"); ok {
		t.Errorf("Attr(missing) found")
	}
	if v, ok := b.StringAttr("level"); ok {
		t.Errorf("StringAttr(level) = %q on a number", v)
	}
}

func TestAttrNilMap(t *testing.T) {
	b := &Block{Name: "core/paragraph"}
	if _, ok := b.Attr("anything"); ok {
		t.Errorf("nil attrs produced a value")
	}
	b.SetAttr("align", "wide")
	if v, _ := b.StringAttr("align"); v != "wide" {
		t.Errorf("SetAttr on nil map: got %q", v)
	}
}

func TestWithAttrCopyOnWrite(t *testing.T) {
	orig := &Block{Name: "core/paragraph"}
	mod := orig.WithAttr("className", "x y")
	if orig.Attrs != nil {
		t.Errorf("receiver gained attrs %v", orig.Attrs)
	}
	if v, _ := mod.StringAttr("className"); v != "x y" {
		t.Errorf("got %q", v)
	}
	if !mod.HasClass("y") {
		t.Errorf("HasClass(y) = false")
	}
	if mod.HasClass("z") {
		t.Errorf("HasClass(z) = true")
	}
}

func TestWithoutAttr(t *testing.T) {
	b := &Block{Attrs: map[string]any{"a": 1, "b": 2}}
	nb := b.WithoutAttr("a")
	if _, ok := nb.Attr("a"); ok {
		t.Errorf("attr a survived")
	}
	if _, ok := b.Attr("a"); !ok {
		t.Errorf("receiver lost attr a")
	}
}

func TestCloneDeep(t *testing.T) {
	s := "<p>x</p>"
	b := &Block{
		Name: "core/group",
		Attrs: map[string]any{
			"style": map[string]any{"spacing": []any{"10px", "0"}},
		},
		InnerHTML:    "<div></div>",
		InnerContent: []*string{&s, nil},
		InnerBlocks: []*Block{
			{Name: "core/paragraph", Attrs: map[string]any{"dropCap": false}},
		},
	}
	nb := b.Clone()
	if d := cmp.Diff(b, nb); d != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", d)
	}
	// mutations must not alias
	nb.Attrs["style"].(map[string]any)["spacing"].([]any)[0] = "0"
	nb.InnerBlocks[0].SetAttr("dropCap", true)
	*nb.InnerContent[0] = "changed"
	if b.Attrs["style"].(map[string]any)["spacing"].([]any)[0] != "10px" {
		t.Errorf("nested attr aliased")
	}
	if v, _ := b.InnerBlocks[0].BoolAttr("dropCap"); v {
		t.Errorf("child attrs aliased")
	}
	if *b.InnerContent[0] != "<p>x</p>" {
		t.Errorf("inner content aliased")
	}
}

func TestNameParts(t *testing.T) {
	b := &Block{Name: "acme/card"}
	if b.Namespace() != "acme" || b.Slug() != "card" {
		t.Errorf("got %q/%q", b.Namespace(), b.Slug())
	}
	f := &Block{}
	if !f.IsFreeform() {
		t.Errorf("nameless block not freeform")
	}
	if f.Namespace() != "" || f.Slug() != "" {
		t.Errorf("freeform parts: %q/%q", f.Namespace(), f.Slug())
	}
}
