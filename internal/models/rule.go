package models

// LengthOperator compares a change's length against a threshold.
type LengthOperator string

const (
	OpLessThan       LengthOperator = "<"
	OpGreaterThan    LengthOperator = ">"
	OpLessOrEqual    LengthOperator = "<="
	OpGreaterOrEqual LengthOperator = ">="
	OpEqual          LengthOperator = "="
)

// LengthUnit selects what a length condition counts.
type LengthUnit string

const (
	UnitWords      LengthUnit = "words"
	UnitCharacters LengthUnit = "characters"
)

// LengthCondition compares the size of a change's original text.
type LengthCondition struct {
	Operator LengthOperator `json:"operator" yaml:"operator" validate:"required,oneof=< > <= >= ="`
	Value    int            `json:"value" yaml:"value" validate:"min=0"`
	Unit     LengthUnit     `json:"unit" yaml:"unit" validate:"required,oneof=words characters"`
}

// RuleConditions is a conjunction over optional predicates. A nil/empty
// predicate is vacuously true.
type RuleConditions struct {
	ChangeTypes   []ChangeType     `json:"change_types,omitempty" yaml:"change_types,omitempty"`
	Length        *LengthCondition `json:"length,omitempty" yaml:"length,omitempty"`
	Sections      []string         `json:"sections,omitempty" yaml:"sections,omitempty"`
	SemanticShift *bool            `json:"semantic_shift,omitempty" yaml:"semantic_shift,omitempty"`
	Impacts       []ImpactLevel    `json:"impacts,omitempty" yaml:"impacts,omitempty"`
}

// RuleActionType defines what a matching rule does to a change.
type RuleActionType string

const (
	ActionAutoAccept RuleActionType = "auto-accept"
	ActionShow       RuleActionType = "show"
	ActionHide       RuleActionType = "hide"
)

// VersionPreference selects which alternative an auto-accept resolves to.
type VersionPreference string

const (
	PreferManual   VersionPreference = "manual"
	PreferAI       VersionPreference = "ai"
	PreferSelected VersionPreference = "selected"
)

// RuleAction is the effect of a matched rule.
type RuleAction struct {
	Type          RuleActionType    `json:"type" yaml:"type" validate:"required,oneof=auto-accept show hide"`
	PreferVersion VersionPreference `json:"prefer_version,omitempty" yaml:"prefer_version,omitempty" validate:"omitempty,oneof=manual ai selected"`
	SetPriority   ImpactLevel       `json:"set_priority,omitempty" yaml:"set_priority,omitempty" validate:"omitempty,oneof=critical important normal low"`
}

// MergeRule is one ordered, condition-gated resolution rule. Lower Priority
// is evaluated first.
type MergeRule struct {
	ID         string         `json:"id" yaml:"id" validate:"required"`
	Name       string         `json:"name" yaml:"name" validate:"required"`
	Enabled    bool           `json:"enabled" yaml:"enabled"`
	Priority   int            `json:"priority" yaml:"priority"`
	Conditions RuleConditions `json:"conditions" yaml:"conditions"`
	Action     RuleAction     `json:"action" yaml:"action"`
}

// MergePreset is a named, ordered, immutable list of merge rules.
type MergePreset struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []MergeRule `json:"rules" yaml:"rules"`
}
