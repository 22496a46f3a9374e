package blockutil

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/arraypress/wp-block-utils/block"
	"github.com/arraypress/wp-block-utils/debug"
)

// PatchAttrs applies an RFC 7386 merge patch to the attributes of every
// block matching pattern, returning a new tree. Setting a key to null in
// the patch removes the attribute. The rest of the tree is deep-copied
// unchanged.
func PatchAttrs(blocks []*block.Block, pattern string, mergePatch []byte) ([]*block.Block, error) {
	return patchAttrs(blocks, pattern, func(attrs []byte) ([]byte, error) {
		return jsonpatch.MergePatch(attrs, mergePatch)
	})
}

// PatchAttrsJSON applies an RFC 6902 operation list to the attributes of
// every block matching pattern, returning a new tree.
func PatchAttrsJSON(blocks []*block.Block, pattern string, patch []byte) ([]*block.Block, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return patchAttrs(blocks, pattern, ops.Apply)
}

func patchAttrs(blocks []*block.Block, pattern string, apply func([]byte) ([]byte, error)) ([]*block.Block, error) {
	res := make([]*block.Block, 0, len(blocks))
	for _, b := range blocks {
		nb := b.CloneShallow()
		if MatchName(nb.Name, pattern) {
			if debug.Patch() {
				debug.Logf("patch attrs of %q\n", nb.Name)
			}
			attrs, err := applyToAttrs(nb.Attrs, apply)
			if err != nil {
				return nil, fmt.Errorf("error patching %q: %w", nb.Name, err)
			}
			nb.Attrs = attrs
		}
		children, err := patchAttrs(b.InnerBlocks, pattern, apply)
		if err != nil {
			return nil, err
		}
		if len(children) != 0 {
			nb.InnerBlocks = children
		}
		res = append(res, nb)
	}
	return res, nil
}

func applyToAttrs(attrs map[string]any, apply func([]byte) ([]byte, error)) (map[string]any, error) {
	if attrs == nil {
		attrs = map[string]any{}
	}
	d, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}
	out, err := apply(d)
	if err != nil {
		return nil, err
	}
	var patched map[string]any
	if err := json.Unmarshal(out, &patched); err != nil {
		return nil, err
	}
	if len(patched) == 0 {
		return nil, nil
	}
	return patched, nil
}
