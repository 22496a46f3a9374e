package blockutil

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSerialized computes a character-level diff between two serialized
// texts, typically a document before and after a rewrite. The result is
// semantically cleaned up for human inspection.
func DiffSerialized(before, after string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(before, "\n") && strings.Contains(after, "\n")
	diffs := diffCfg.DiffMain(before, after, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

var (
	diffInsert = color.New(color.FgGreen).SprintFunc()
	diffDelete = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

// DiffPretty renders a diff with terminal colors: insertions green,
// deletions red struck-through. Color is subject to the color package's
// global NO_COLOR/TTY handling.
func DiffPretty(before, after string) string {
	var sb strings.Builder
	for _, d := range DiffSerialized(before, after) {
		switch d.Type {
		case diffpatch.DiffInsert:
			sb.WriteString(diffInsert(d.Text))
		case diffpatch.DiffDelete:
			sb.WriteString(diffDelete(d.Text))
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
