package ruleengine

import (
	"github.com/aleister1102/redline/internal/models"
	"github.com/aleister1102/redline/internal/tokenizer"
)

// matchesConditions evaluates a rule's condition conjunction against a
// change. Omitted predicates are vacuously true. Malformed predicates (an
// unrecognized operator or unit) fail closed: the rule does not match, so a
// bad rule can never auto-accept a change it shouldn't.
func matchesConditions(conditions models.RuleConditions, change *models.ClassifiedChange) bool {
	if len(conditions.ChangeTypes) > 0 && !containsChangeType(conditions.ChangeTypes, change.Type) {
		return false
	}

	if conditions.Length != nil && !matchesLength(conditions.Length, change) {
		return false
	}

	if len(conditions.Sections) > 0 && !containsSection(conditions.Sections, change.Location.Section) {
		return false
	}

	if conditions.SemanticShift != nil && *conditions.SemanticShift != change.SemanticShift {
		return false
	}

	if len(conditions.Impacts) > 0 && !containsImpact(conditions.Impacts, change.Impact) {
		return false
	}

	return true
}

// matchesLength compares the change's size against the condition threshold.
// The measured text is the longer side of the change, so additions and
// deletions are both measured by the content they touch.
func matchesLength(cond *models.LengthCondition, change *models.ClassifiedChange) bool {
	var size int
	switch cond.Unit {
	case models.UnitWords:
		size = maxInt(wordCount(change.OriginalText), wordCount(change.ProposedText))
	case models.UnitCharacters:
		size = maxInt(len([]rune(change.OriginalText)), len([]rune(change.ProposedText)))
	default:
		return false
	}

	switch cond.Operator {
	case models.OpLessThan:
		return size < cond.Value
	case models.OpGreaterThan:
		return size > cond.Value
	case models.OpLessOrEqual:
		return size <= cond.Value
	case models.OpGreaterOrEqual:
		return size >= cond.Value
	case models.OpEqual:
		return size == cond.Value
	default:
		return false
	}
}

func containsChangeType(types []models.ChangeType, t models.ChangeType) bool {
	for _, ct := range types {
		if ct == t {
			return true
		}
	}
	return false
}

func containsSection(sections []string, section string) bool {
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

func containsImpact(impacts []models.ImpactLevel, impact models.ImpactLevel) bool {
	for _, i := range impacts {
		if i == impact {
			return true
		}
	}
	return false
}

func wordCount(text string) int {
	count := 0
	for _, tok := range tokenizer.Tokenize(text) {
		if tok.Kind == models.TokenWord {
			count++
		}
	}
	return count
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
