package models

// DiffOpKind defines the type of a diff operation.
type DiffOpKind int

const (
	// DiffEqual indicates an unchanged segment.
	DiffEqual DiffOpKind = 0
	// DiffInsert indicates an inserted segment.
	DiffInsert DiffOpKind = 1
	// DiffDelete indicates a deleted segment.
	DiffDelete DiffOpKind = -1
)

// String returns string representation of DiffOpKind
func (k DiffOpKind) String() string {
	switch k {
	case DiffEqual:
		return "equal"
	case DiffInsert:
		return "insert"
	case DiffDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// DiffOperation is a single step of an edit script. SourceIndex is the token
// index into the old sequence for equal/delete operations and into the new
// sequence for insert operations.
type DiffOperation struct {
	Kind        DiffOpKind `json:"kind"`
	Text        string     `json:"text"`
	SourceIndex int        `json:"source_index"`
}

// DiffStatistics holds word-level diff calculation results.
type DiffStatistics struct {
	WordsAdded   int  `json:"words_added"`
	WordsDeleted int  `json:"words_deleted"`
	IsIdentical  bool `json:"is_identical"`
}

// WordDiffResult holds the structured result of a word diff operation.
type WordDiffResult struct {
	Operations       []DiffOperation `json:"operations"`
	Stats            DiffStatistics  `json:"stats"`
	Fallback         bool            `json:"fallback,omitempty"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
}
