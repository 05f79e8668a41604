package classifier

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/redline/internal/models"
)

func TestClassify_Addition(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	change := c.Classify("", "brand new sentence", models.Location{Paragraph: 0})

	assert.Equal(t, models.ChangeTypeAddition, change.Type)
	assert.Equal(t, models.ImpactNormal, change.Impact)
	assert.Equal(t, models.StatusPending, change.Status)
}

func TestClassify_LongAdditionIsImportant(t *testing.T) {
	c := NewClassifier(zerolog.Nop())
	added := strings.Repeat("word ", 12)

	change := c.Classify("", added, models.Location{})

	assert.Equal(t, models.ChangeTypeAddition, change.Type)
	assert.Equal(t, models.ImpactImportant, change.Impact)
}

func TestClassify_Deletion(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	change := c.Classify("removed words", "", models.Location{})

	assert.Equal(t, models.ChangeTypeDeletion, change.Type)
	assert.Equal(t, models.ImpactNormal, change.Impact)
}

func TestClassify_LongDeletionIsCritical(t *testing.T) {
	c := NewClassifier(zerolog.Nop())
	deleted := strings.Repeat("word ", 25)

	change := c.Classify(deleted, "", models.Location{})

	assert.Equal(t, models.ChangeTypeDeletion, change.Type)
	assert.Equal(t, models.ImpactCritical, change.Impact)
}

func TestClassify_Punctuation(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	change := c.Classify("Hello, world", "Hello world", models.Location{})

	assert.Equal(t, models.ChangeTypePunctuation, change.Type)
	assert.Equal(t, models.ImpactLow, change.Impact)
}

func TestClassify_Spelling(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	change := c.Classify("the recieve queue", "the receive queue", models.Location{})

	assert.Equal(t, models.ChangeTypeSpelling, change.Type)
	assert.Equal(t, models.ImpactLow, change.Impact)
}

func TestClassify_WordChoice(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	// "quick" -> "fast" is edit distance 4, beyond the spelling threshold.
	change := c.Classify("quick", "fast", models.Location{})

	assert.Equal(t, models.ChangeTypeWordChoice, change.Type)
	assert.Equal(t, models.ImpactNormal, change.Impact)
}

func TestClassify_Structure(t *testing.T) {
	c := NewClassifier(zerolog.Nop())
	expanded := strings.Repeat("filler ", 15) + "sentence"

	change := c.Classify("short sentence", expanded, models.Location{})

	assert.Equal(t, models.ChangeTypeStructure, change.Type)
	assert.Equal(t, models.ImpactCritical, change.Impact)
}

func TestClassify_ToneShiftByPronoun(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	change := c.Classify("We believe the results speak volumes", "The results speak clearly for themselves", models.Location{})

	assert.Equal(t, models.ChangeTypeTone, change.Type)
	assert.Equal(t, models.ImpactImportant, change.Impact)
}

func TestClassify_ToneShiftByChargedVocabulary(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	change := c.Classify("This product is amazing and fun", "This product is adequate and useful", models.Location{})

	assert.Equal(t, models.ChangeTypeTone, change.Type)
}

func TestClassify_ToneInIntroIsCritical(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	change := c.Classify("We love this approach today", "That approach remains viable today", models.Location{Paragraph: 0, Section: "introduction"})

	assert.Equal(t, models.ChangeTypeTone, change.Type)
	assert.Equal(t, models.ImpactCritical, change.Impact)
}

func TestClassify_Totality(t *testing.T) {
	c := NewClassifier(zerolog.Nop())

	valid := map[models.ChangeType]bool{
		models.ChangeTypeAddition:     true,
		models.ChangeTypeDeletion:     true,
		models.ChangeTypeModification: true,
		models.ChangeTypePunctuation:  true,
		models.ChangeTypeSpelling:     true,
		models.ChangeTypeWordChoice:   true,
		models.ChangeTypeTone:         true,
		models.ChangeTypeStructure:    true,
	}

	pairs := [][2]string{
		{"", ""},
		{"a", "b"},
		{"!!!", "???"},
		{"   ", "x"},
		{"one two three", "three two one"},
		{strings.Repeat("a ", 50), "b"},
	}

	for _, p := range pairs {
		change := c.Classify(p[0], p[1], models.Location{})
		assert.True(t, valid[change.Type], "Classify(%q, %q) returned %q", p[0], p[1], change.Type)
	}
}

func TestDetectSemanticShift(t *testing.T) {
	tests := []struct {
		name     string
		oldSpan  string
		newSpan  string
		expected bool
	}{
		{"personal to professional", "we think this works", "therefore this approach works", true},
		{"same family", "we think", "our team thinks", false},
		{"one side unbucketed", "we think this works", "this approach works", false},
		{"neither bucketed", "plain text", "other text", false},
		{"casual to formal", "this is really cool", "this shall be noted herein", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectSemanticShift(tt.oldSpan, tt.newSpan))
		})
	}
}

func TestDetectMoves_ExactRelocation(t *testing.T) {
	md := NewMoveDetector(zerolog.Nop())

	changes := []*models.ClassifiedChange{
		{ID: "c1", Type: models.ChangeTypeDeletion, Location: models.Location{Paragraph: 1}, OriginalText: "The cat sat on the mat", Status: models.StatusPending},
		{ID: "c2", Type: models.ChangeTypeAddition, Location: models.Location{Paragraph: 5}, ProposedText: "The cat sat on the mat", Status: models.StatusPending},
	}

	result := md.DetectMoves(changes)

	require.Len(t, result, 1)
	move := result[0]
	assert.Equal(t, models.ChangeTypeMove, move.Type)
	assert.Equal(t, "The cat sat on the mat", move.OriginalText)
	assert.Equal(t, "The cat sat on the mat", move.ProposedText)
	assert.Equal(t, 5, move.Location.Paragraph)
}

func TestDetectMoves_BelowThresholdKeepsBoth(t *testing.T) {
	md := NewMoveDetector(zerolog.Nop())

	changes := []*models.ClassifiedChange{
		{Type: models.ChangeTypeDeletion, Location: models.Location{Paragraph: 0}, OriginalText: "completely original phrasing"},
		{Type: models.ChangeTypeAddition, Location: models.Location{Paragraph: 3}, ProposedText: "unrelated replacement content"},
	}

	result := md.DetectMoves(changes)

	require.Len(t, result, 2)
	assert.Equal(t, models.ChangeTypeDeletion, result[0].Type)
	assert.Equal(t, models.ChangeTypeAddition, result[1].Type)
}

func TestDetectMoves_MutualExclusion(t *testing.T) {
	md := NewMoveDetector(zerolog.Nop())

	changes := []*models.ClassifiedChange{
		{Type: models.ChangeTypeDeletion, Location: models.Location{Paragraph: 0}, OriginalText: "moved paragraph text"},
		{Type: models.ChangeTypeAddition, Location: models.Location{Paragraph: 2}, ProposedText: "moved paragraph text"},
		{Type: models.ChangeTypeAddition, Location: models.Location{Paragraph: 4}, ProposedText: "moved paragraph text"},
	}

	result := md.DetectMoves(changes)

	// One move, one leftover insertion; the move claims exactly one partner.
	var moves, additions, deletions int
	for _, change := range result {
		switch change.Type {
		case models.ChangeTypeMove:
			moves++
		case models.ChangeTypeAddition:
			additions++
		case models.ChangeTypeDeletion:
			deletions++
		}
	}
	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, additions)
	assert.Equal(t, 0, deletions)
}

func TestDetectMoves_GreedyFirstMatchIsStable(t *testing.T) {
	md := NewMoveDetector(zerolog.Nop())

	build := func() []*models.ClassifiedChange {
		return []*models.ClassifiedChange{
			{ID: "d1", Type: models.ChangeTypeDeletion, Location: models.Location{Paragraph: 1}, OriginalText: "shared text"},
			{ID: "a2", Type: models.ChangeTypeAddition, Location: models.Location{Paragraph: 6}, ProposedText: "shared text"},
			{ID: "a1", Type: models.ChangeTypeAddition, Location: models.Location{Paragraph: 3}, ProposedText: "shared text"},
		}
	}

	first := md.DetectMoves(build())
	second := md.DetectMoves(build())

	require.Len(t, first, 2)
	// Greedy pairing claims the earlier insertion by location order.
	assert.Equal(t, models.ChangeTypeMove, first[0].Type)
	assert.Equal(t, 3, first[0].Location.Paragraph)
	assert.Equal(t, first[0].Location, second[0].Location)
}

func TestDetectMoves_DoesNotMutateInput(t *testing.T) {
	md := NewMoveDetector(zerolog.Nop())

	changes := []*models.ClassifiedChange{
		{Type: models.ChangeTypeDeletion, Location: models.Location{Paragraph: 0}, OriginalText: "the same text"},
		{Type: models.ChangeTypeAddition, Location: models.Location{Paragraph: 1}, ProposedText: "the same text"},
	}

	md.DetectMoves(changes)

	assert.Equal(t, models.ChangeTypeDeletion, changes[0].Type)
	assert.Equal(t, models.ChangeTypeAddition, changes[1].Type)
}
