package blockutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/arraypress/wp-block-utils/block"
)

// Text extracts the plain text of a block's own inner HTML, tags stripped,
// surrounding whitespace trimmed. Children are not visited.
func Text(b *block.Block) (string, error) {
	if b.InnerHTML == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.InnerHTML))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Text()), nil
}

// AllText extracts the plain text of every block in traversal order,
// joining non-empty fragments with sep.
func AllText(blocks []*block.Block, sep string) (string, error) {
	var parts []string
	err := Walk(blocks, func(b *block.Block, _ int) error {
		t, err := Text(b)
		if err != nil {
			return err
		}
		if t != "" {
			parts = append(parts, t)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(parts, sep), nil
}
