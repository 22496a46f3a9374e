package blockutil

import (
	"testing"

	"github.com/arraypress/wp-block-utils/block"
)

func named(name string, children ...*block.Block) *block.Block {
	return &block.Block{Name: name, InnerBlocks: children}
}

func withAttrs(b *block.Block, attrs map[string]any) *block.Block {
	b.Attrs = attrs
	return b
}

// the two-block document used across find/count tests: an outer heading,
// then a paragraph containing a nested heading
func headingTree() []*block.Block {
	return []*block.Block{
		named("core/heading"),
		named("core/paragraph",
			named("core/heading"),
		),
	}
}

func names(blocks []*block.Block) []string {
	res := make([]string, 0, len(blocks))
	for _, b := range blocks {
		res = append(res, b.Name)
	}
	return res
}

type matchNameTest struct {
	name    string
	pattern string
	res     bool
}

var matchNameTests = []matchNameTest{
	{name: "core/heading", pattern: "core/heading", res: true},
	{name: "core/heading", pattern: "core/head", res: false},
	{name: "core/heading", pattern: "core/*", res: true},
	{name: "core/heading", pattern: "core/head*", res: true},
	{name: "core/heading", pattern: "acme/*", res: false},
	{name: "core/heading", pattern: "*", res: true},
	{name: "core/heading", pattern: "", res: false},
	// the wildcard marker is only special at the end
	{name: "core/x*y", pattern: "core/x*y", res: true},
	{name: "core/x*yz", pattern: "core/x*y*", res: true},
	// a nameless block matches nothing
	{name: "", pattern: "*", res: false},
	{name: "", pattern: "", res: false},
}

func TestMatchName(t *testing.T) {
	for i, tt := range matchNameTests {
		if got := MatchName(tt.name, tt.pattern); got != tt.res {
			t.Errorf("%d: MatchName(%q, %q) = %v, want %v", i, tt.name, tt.pattern, got, tt.res)
		}
	}
}

func TestFindByNameExact(t *testing.T) {
	got := FindByName(headingTree(), "core/heading")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	// outer heading first, nested heading second
	for _, b := range got {
		if b.Name != "core/heading" {
			t.Errorf("matched %q", b.Name)
		}
	}
}

func TestFindByNameWildcard(t *testing.T) {
	tree := append(headingTree(), named(""), named("acme/embed"))
	got := names(FindByName(tree, "core/*"))
	want := []string{"core/heading", "core/paragraph", "core/heading"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindOrderParentsFirst(t *testing.T) {
	tree := []*block.Block{
		named("a/x",
			named("a/y", named("a/z")),
		),
		named("a/w"),
	}
	got := names(FindByName(tree, "a/*"))
	want := []string{"a/x", "a/y", "a/z", "a/w"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFindByClass(t *testing.T) {
	tree := []*block.Block{
		withAttrs(named("core/paragraph"), map[string]any{"className": "lead intro"}),
		named("core/group",
			withAttrs(named("core/paragraph"), map[string]any{"className": "intro"}),
			withAttrs(named("core/paragraph"), map[string]any{"className": "introduction"}),
		),
		named("core/paragraph"),
	}
	if got := len(FindByClass(tree, "intro")); got != 2 {
		t.Errorf("intro: got %d matches, want 2", got)
	}
	if got := len(FindByClass(tree, "lead")); got != 1 {
		t.Errorf("lead: got %d matches, want 1", got)
	}
	if got := len(FindByClass(tree, "missing")); got != 0 {
		t.Errorf("missing: got %d matches, want 0", got)
	}
}

func TestFindByAttr(t *testing.T) {
	tree := []*block.Block{
		withAttrs(named("core/heading"), map[string]any{"level": 2}),
		withAttrs(named("core/heading"), map[string]any{"level": 3}),
		named("core/heading"),
	}
	if got := len(FindByAttr(tree, "level", 2)); got != 1 {
		t.Errorf("got %d matches, want 1", got)
	}
	if got := len(FindByAttr(tree, "level", 9)); got != 0 {
		t.Errorf("got %d matches, want 0", got)
	}
}

func TestFirstContains(t *testing.T) {
	tree := headingTree()
	if b := First(tree, "core/heading"); b == nil || b != tree[0] {
		t.Errorf("First returned %v, want outer heading", b)
	}
	if b := First(tree, "core/quote"); b != nil {
		t.Errorf("First returned %v, want nil", b)
	}
	if !Contains(tree, "core/para*") {
		t.Errorf("Contains(core/para*) = false")
	}
	if Contains(tree, "acme/*") {
		t.Errorf("Contains(acme/*) = true")
	}
}

func TestWalkSkipChildren(t *testing.T) {
	tree := []*block.Block{
		named("a/x", named("a/y")),
		named("a/z"),
	}
	var visited []string
	err := Walk(tree, func(b *block.Block, depth int) error {
		visited = append(visited, b.Name)
		if b.Name == "a/x" {
			return SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(visited) != 2 || visited[0] != "a/x" || visited[1] != "a/z" {
		t.Errorf("visited %v", visited)
	}
}

func TestWalkDepth(t *testing.T) {
	tree := []*block.Block{
		named("a/x", named("a/y", named("a/z"))),
	}
	depths := map[string]int{}
	Walk(tree, func(b *block.Block, depth int) error {
		depths[b.Name] = depth
		return nil
	})
	want := map[string]int{"a/x": 0, "a/y": 1, "a/z": 2}
	for k, v := range want {
		if depths[k] != v {
			t.Errorf("depth of %s = %d, want %d", k, depths[k], v)
		}
	}
}
