package models

// ChangeType classifies what kind of edit a change represents.
type ChangeType string

const (
	ChangeTypeAddition     ChangeType = "addition"
	ChangeTypeDeletion     ChangeType = "deletion"
	ChangeTypeModification ChangeType = "modification"
	ChangeTypeMove         ChangeType = "move"
	ChangeTypeGrammar      ChangeType = "grammar"
	ChangeTypePunctuation  ChangeType = "punctuation"
	ChangeTypeSpelling     ChangeType = "spelling"
	ChangeTypeWordChoice   ChangeType = "word-choice"
	ChangeTypeTone         ChangeType = "tone"
	ChangeTypeStructure    ChangeType = "structure"
	// ChangeTypeRewrite signals that the differ gave up on a fine-grained
	// edit script and fell back to a coarse line-level diff.
	ChangeTypeRewrite ChangeType = "rewrite"
)

// ImpactLevel grades how much attention a change deserves.
type ImpactLevel string

const (
	ImpactCritical  ImpactLevel = "critical"
	ImpactImportant ImpactLevel = "important"
	ImpactNormal    ImpactLevel = "normal"
	ImpactLow       ImpactLevel = "low"
)

// ChangeStatus tracks the review state of a change. The only transitions are
// pending -> accepted/rejected/auto-handled; returning to pending requires
// re-running classification on fresh input.
type ChangeStatus string

const (
	StatusPending     ChangeStatus = "pending"
	StatusAccepted    ChangeStatus = "accepted"
	StatusRejected    ChangeStatus = "rejected"
	StatusAutoHandled ChangeStatus = "auto-handled"
)

// AlternativeSource tags where a proposed replacement came from.
type AlternativeSource string

const (
	SourceManual AlternativeSource = "manual"
	SourceAI     AlternativeSource = "ai"
)

// Alternative is one proposed replacement text for a change.
type Alternative struct {
	ID     string            `json:"id"`
	Source AlternativeSource `json:"source"`
	Text   string            `json:"text"`
}

// Location is a coarse position of a change within the document. Paragraph is
// a paragraph/section index; Section is an optional human label ("intro",
// "conclusion", ...). Exact byte offsets are a presentation concern.
type Location struct {
	Paragraph int    `json:"paragraph"`
	Section   string `json:"section,omitempty"`
}

// ClassifiedChange is the unit the rule engine operates on.
type ClassifiedChange struct {
	ID           string      `json:"id"`
	Type         ChangeType  `json:"type"`
	Impact       ImpactLevel `json:"impact"`
	Location     Location    `json:"location"`
	OriginalText string      `json:"original_text"`
	// ProposedText is the raw replacement span from the diff. For a move it
	// is the text at the destination; for a deletion it is empty.
	ProposedText          string        `json:"proposed_text,omitempty"`
	Alternatives          []Alternative `json:"alternatives,omitempty"`
	SemanticShift         bool          `json:"semantic_shift"`
	Status                ChangeStatus  `json:"status"`
	SelectedAlternativeID string        `json:"selected_alternative_id,omitempty"`
	RuleApplied           string        `json:"rule_applied,omitempty"`
}

// Clone returns a deep copy of the change.
func (cc *ClassifiedChange) Clone() *ClassifiedChange {
	clone := *cc
	if cc.Alternatives != nil {
		clone.Alternatives = make([]Alternative, len(cc.Alternatives))
		copy(clone.Alternatives, cc.Alternatives)
	}
	return &clone
}

// IsResolved reports whether the change no longer needs review.
func (cc *ClassifiedChange) IsResolved() bool {
	return cc.Status != StatusPending
}
