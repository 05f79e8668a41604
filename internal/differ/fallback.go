package differ

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/aleister1102/redline/internal/models"
)

// lineFallbackDiffer produces a coarse line-level diff for document pairs
// whose word-level edit distance exceeds the configured cap.
type lineFallbackDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

func newLineFallbackDiffer() *lineFallbackDiffer {
	return &lineFallbackDiffer{
		dmp: diffmatchpatch.New(),
	}
}

// Diff runs a line-mode diffmatchpatch diff and converts the result into
// engine operations. Line mode keeps the output coarse, which is the point:
// near-total rewrites do not benefit from word granularity.
func (lfd *lineFallbackDiffer) Diff(oldText, newText string) []models.DiffOperation {
	diffs := lfd.dmp.DiffMain(oldText, newText, true)
	diffs = lfd.dmp.DiffCleanupSemantic(diffs)

	ops := make([]models.DiffOperation, 0, len(diffs))
	oldIndex := 0
	newIndex := 0

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			ops = append(ops, models.DiffOperation{Kind: models.DiffEqual, Text: d.Text, SourceIndex: oldIndex})
			oldIndex++
			newIndex++
		case diffmatchpatch.DiffDelete:
			ops = append(ops, models.DiffOperation{Kind: models.DiffDelete, Text: d.Text, SourceIndex: oldIndex})
			oldIndex++
		case diffmatchpatch.DiffInsert:
			ops = append(ops, models.DiffOperation{Kind: models.DiffInsert, Text: d.Text, SourceIndex: newIndex})
			newIndex++
		}
	}

	return ops
}
