// Package classifier assigns a semantic change type and impact level to
// compacted diff spans, and pairs relocated content into move changes.
package classifier

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/redline/internal/models"
	"github.com/aleister1102/redline/internal/similarity"
	"github.com/aleister1102/redline/internal/tokenizer"
)

// Word-count thresholds for the classification and impact ladders.
const (
	structureWordDelta   = 10
	wordChoiceWordDelta  = 3
	spellingEditDistance = 2
	criticalDeletionLen  = 20
	importantAdditionLen = 10
	importantChoiceLen   = 5
)

// Classifier assigns change types and impact levels to span pairs
type Classifier struct {
	logger zerolog.Logger
}

// NewClassifier creates a new Classifier instance
func NewClassifier(logger zerolog.Logger) *Classifier {
	return &Classifier{
		logger: logger.With().Str("component", "Classifier").Logger(),
	}
}

// Classify builds a partially populated change for one original/modified span
// pair. ID and Alternatives are owned by the caller, which holds the
// version/author metadata. Classification is total: any two strings produce
// exactly one change type.
func (c *Classifier) Classify(oldSpan, newSpan string, loc models.Location) *models.ClassifiedChange {
	changeType := c.classifyType(oldSpan, newSpan)

	change := &models.ClassifiedChange{
		Type:          changeType,
		Location:      loc,
		OriginalText:  oldSpan,
		ProposedText:  newSpan,
		SemanticShift: detectSemanticShift(oldSpan, newSpan),
		Status:        models.StatusPending,
	}
	change.Impact = c.assignImpact(change)

	return change
}

// classifyType walks the decision ladder; the first match wins.
func (c *Classifier) classifyType(oldSpan, newSpan string) models.ChangeType {
	oldEmpty := strings.TrimSpace(oldSpan) == ""
	newEmpty := strings.TrimSpace(newSpan) == ""

	switch {
	case oldEmpty && newEmpty:
		return models.ChangeTypeModification
	case oldEmpty:
		return models.ChangeTypeAddition
	case newEmpty:
		return models.ChangeTypeDeletion
	}

	if stripNonWord(oldSpan) == stripNonWord(newSpan) {
		return models.ChangeTypePunctuation
	}

	oldWords := words(oldSpan)
	newWords := words(newSpan)

	if isSpellingFix(oldWords, newWords) {
		return models.ChangeTypeSpelling
	}

	delta := len(newWords) - len(oldWords)
	if delta < 0 {
		delta = -delta
	}

	if delta > structureWordDelta {
		return models.ChangeTypeStructure
	}

	if hasToneShift(oldSpan, newSpan) {
		return models.ChangeTypeTone
	}

	if delta <= wordChoiceWordDelta {
		return models.ChangeTypeWordChoice
	}

	return models.ChangeTypeModification
}

// assignImpact grades the change; the first match wins.
func (c *Classifier) assignImpact(change *models.ClassifiedChange) models.ImpactLevel {
	oldCount := len(words(change.OriginalText))
	newCount := len(words(change.ProposedText))
	spanCount := oldCount
	if newCount > spanCount {
		spanCount = newCount
	}

	section := strings.ToLower(change.Location.Section)
	inKeySection := strings.Contains(section, "intro") || strings.Contains(section, "conclusion")

	switch {
	case change.Type == models.ChangeTypeStructure:
		return models.ImpactCritical
	case change.Type == models.ChangeTypeDeletion && oldCount > criticalDeletionLen:
		return models.ImpactCritical
	case inKeySection && (change.Type == models.ChangeTypeTone || change.Type == models.ChangeTypeModification):
		return models.ImpactCritical
	case change.Type == models.ChangeTypeTone:
		return models.ImpactImportant
	case change.Type == models.ChangeTypeAddition && newCount > importantAdditionLen:
		return models.ImpactImportant
	case change.Type == models.ChangeTypeWordChoice && spanCount > importantChoiceLen:
		return models.ImpactImportant
	case change.Type == models.ChangeTypeGrammar,
		change.Type == models.ChangeTypePunctuation,
		change.Type == models.ChangeTypeSpelling:
		return models.ImpactLow
	default:
		return models.ImpactNormal
	}
}

// isSpellingFix reports whether the spans have equal word counts and exactly
// one differing word within the spelling edit-distance threshold.
func isSpellingFix(oldWords, newWords []string) bool {
	if len(oldWords) != len(newWords) || len(oldWords) == 0 {
		return false
	}

	diffIndex := -1
	for i := range oldWords {
		if oldWords[i] != newWords[i] {
			if diffIndex >= 0 {
				return false
			}
			diffIndex = i
		}
	}

	if diffIndex < 0 {
		return false
	}

	return similarity.Distance(oldWords[diffIndex], newWords[diffIndex]) <= spellingEditDistance
}

// hasToneShift fires when exactly one side uses first-person pronouns, or
// exactly one side uses emotionally charged vocabulary.
func hasToneShift(oldSpan, newSpan string) bool {
	oldPersonal := containsAny(oldSpan, firstPersonPronouns)
	newPersonal := containsAny(newSpan, firstPersonPronouns)
	if oldPersonal != newPersonal {
		return true
	}

	oldCharged := containsAny(oldSpan, chargedWords)
	newCharged := containsAny(newSpan, chargedWords)
	return oldCharged != newCharged
}

// detectSemanticShift buckets both spans into tone families and flags true
// only when both matched different, non-empty families.
func detectSemanticShift(oldSpan, newSpan string) bool {
	oldFamily := toneFamilyOf(oldSpan)
	newFamily := toneFamilyOf(newSpan)
	return oldFamily != ToneNone && newFamily != ToneNone && oldFamily != newFamily
}

// toneFamilyOf returns the first family in voting order with a keyword
// present in the span, or ToneNone.
func toneFamilyOf(span string) ToneFamily {
	wordSet := make(map[string]bool)
	for _, w := range words(span) {
		wordSet[strings.ToLower(w)] = true
	}

	for _, family := range toneFamilyOrder {
		for _, keyword := range toneFamilyKeywords[family] {
			if wordSet[keyword] {
				return family
			}
		}
	}

	return ToneNone
}

func containsAny(span string, lexicon map[string]bool) bool {
	for _, w := range words(span) {
		if lexicon[strings.ToLower(w)] {
			return true
		}
	}
	return false
}

// words returns the word tokens of a span.
func words(span string) []string {
	var result []string
	for _, tok := range tokenizer.Tokenize(span) {
		if tok.Kind == models.TokenWord {
			result = append(result, tok.Text)
		}
	}
	return result
}

// stripNonWord removes everything except word characters and whitespace.
func stripNonWord(span string) string {
	var sb strings.Builder
	for _, tok := range tokenizer.Tokenize(span) {
		if tok.Kind != models.TokenPunctuation {
			sb.WriteString(tok.Text)
		}
	}
	return sb.String()
}
