package differ

import (
	"github.com/aleister1102/redline/internal/models"
)

// CompactOperations merges maximal runs of consecutive same-kind operations
// into single operations with concatenated text. The result is a new slice;
// the input is not modified. Each merged operation keeps the SourceIndex of
// the first operation in its run.
func CompactOperations(ops []models.DiffOperation) []models.DiffOperation {
	if len(ops) == 0 {
		return nil
	}

	compacted := make([]models.DiffOperation, 0, len(ops))
	current := ops[0]

	for i := 1; i < len(ops); i++ {
		if ops[i].Kind == current.Kind {
			current.Text += ops[i].Text
			continue
		}
		compacted = append(compacted, current)
		current = ops[i]
	}
	compacted = append(compacted, current)

	return compacted
}
