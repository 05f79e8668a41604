// Package engine composes the tokenizer, word differ, classifier, move
// detector, and rule engine into the document review pipeline. It is the
// public surface consumed by the editor and version-history layers.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/redline/internal/classifier"
	"github.com/aleister1102/redline/internal/differ"
	"github.com/aleister1102/redline/internal/models"
	"github.com/aleister1102/redline/internal/ruleengine"
	"github.com/aleister1102/redline/internal/similarity"
	"github.com/aleister1102/redline/internal/tokenizer"
)

// replacementSimilarityThreshold decides whether an adjacent delete+insert
// pair is one replacement span or two unrelated changes.
const replacementSimilarityThreshold = 0.3

// Engine runs the semantic diff and merge classification pipeline.
type Engine struct {
	differ       *differ.WordDiffer
	classifier   *classifier.Classifier
	moveDetector *classifier.MoveDetector
	ruleEngine   *ruleengine.RuleEngine
	logger       zerolog.Logger
}

// EngineBuilder provides a fluent interface for creating an Engine
type EngineBuilder struct {
	diffConfig differ.DiffConfig
	logger     zerolog.Logger
}

// NewEngineBuilder creates a new builder
func NewEngineBuilder(logger zerolog.Logger) *EngineBuilder {
	return &EngineBuilder{
		diffConfig: differ.DefaultDiffConfig(),
		logger:     logger,
	}
}

// WithDiffConfig sets the diff configuration
func (b *EngineBuilder) WithDiffConfig(cfg differ.DiffConfig) *EngineBuilder {
	b.diffConfig = cfg
	return b
}

// Build creates a new Engine instance
func (b *EngineBuilder) Build() *Engine {
	return &Engine{
		differ:       differ.NewWordDifferBuilder(b.logger).WithDiffConfig(b.diffConfig).Build(),
		classifier:   classifier.NewClassifier(b.logger),
		moveDetector: classifier.NewMoveDetector(b.logger),
		ruleEngine:   ruleengine.NewRuleEngine(b.logger),
		logger:       b.logger.With().Str("component", "Engine").Logger(),
	}
}

// NewEngine creates an Engine with default configuration
func NewEngine(logger zerolog.Logger) *Engine {
	return NewEngineBuilder(logger).Build()
}

// DiffWords computes the compacted word-level edit script between two text
// versions. Both strings must be de-tagged plain text; HTML callers strip
// markup first (see the normalizer package).
func (e *Engine) DiffWords(oldText, newText string) (*models.WordDiffResult, error) {
	return e.differ.Diff(oldText, newText)
}

// Classify assigns a change type, impact level, and semantic-shift flag to
// one original/modified span pair. ID and Alternatives are left for the
// caller, which owns version and author metadata.
func (e *Engine) Classify(oldSpan, newSpan string, loc models.Location) *models.ClassifiedChange {
	return e.classifier.Classify(oldSpan, newSpan, loc)
}

// DetectMoves substitutes matched deletion/insertion pairs with move changes.
func (e *Engine) DetectMoves(changes []*models.ClassifiedChange) []*models.ClassifiedChange {
	return e.moveDetector.DetectMoves(changes)
}

// ApplyRules resolves changes against a rule list; the input is not mutated.
func (e *Engine) ApplyRules(changes []*models.ClassifiedChange, rules []models.MergeRule) []*models.ClassifiedChange {
	return e.ruleEngine.ApplyRules(changes, rules)
}

// ReviewResult is the output of a full pipeline run over a document pair.
type ReviewResult struct {
	Changes []*models.ClassifiedChange `json:"changes"`
	Stats   models.DiffStatistics      `json:"stats"`
	// Fallback is true when the word differ hit its edit-distance cap and
	// the result is a single coarse rewrite change.
	Fallback bool `json:"fallback,omitempty"`
}

// Review runs the full pipeline: diff, span extraction, classification, move
// detection, and rule resolution. Each change receives a stable content-hash
// ID and a generated alternative carrying the proposed text, so the result
// satisfies the at-least-one-alternative invariant for non-deletions.
func (e *Engine) Review(oldText, newText string, rules []models.MergeRule) (*ReviewResult, error) {
	diffResult, err := e.differ.Diff(oldText, newText)
	if err != nil {
		return nil, err
	}

	if diffResult.Fallback {
		rewrite := e.buildRewriteChange(oldText, newText)
		return &ReviewResult{
			Changes:  e.ruleEngine.ApplyRules([]*models.ClassifiedChange{rewrite}, rules),
			Stats:    diffResult.Stats,
			Fallback: true,
		}, nil
	}

	changes := e.extractChanges(diffResult.Operations)
	changes = e.moveDetector.DetectMoves(changes)
	changes = e.ruleEngine.ApplyRules(changes, rules)

	e.logger.Debug().
		Int("changes", len(changes)).
		Int("words_added", diffResult.Stats.WordsAdded).
		Int("words_deleted", diffResult.Stats.WordsDeleted).
		Msg("Document review completed")

	return &ReviewResult{
		Changes: changes,
		Stats:   diffResult.Stats,
	}, nil
}

// extractChanges converts a compacted edit script into classified changes.
// An adjacent delete+insert pair is treated as one replacement span only
// when the two sides are related; unrelated pairs stay separate deletion
// and addition changes so the move detector can still claim them. Paragraph
// positions are tracked by counting blank-line breaks in the text preceding
// each span.
func (e *Engine) extractChanges(ops []models.DiffOperation) []*models.ClassifiedChange {
	var changes []*models.ClassifiedChange
	paragraph := 0
	last := lastParagraph(ops)

	for i := 0; i < len(ops); i++ {
		op := ops[i]
		loc := models.Location{Paragraph: paragraph, Section: sectionLabel(paragraph, last)}

		switch op.Kind {
		case models.DiffEqual:
			paragraph += strings.Count(op.Text, "\n\n")
			continue
		case models.DiffDelete:
			oldSpan := op.Text
			newSpan := ""
			if i+1 < len(ops) && ops[i+1].Kind == models.DiffInsert && isReplacementPair(oldSpan, ops[i+1].Text) {
				newSpan = ops[i+1].Text
				i++
			}
			if change := e.buildChange(oldSpan, newSpan, loc, len(changes)); change != nil {
				changes = append(changes, change)
			}
			paragraph += strings.Count(oldSpan, "\n\n")
		case models.DiffInsert:
			if change := e.buildChange("", op.Text, loc, len(changes)); change != nil {
				changes = append(changes, change)
			}
		}
	}

	return changes
}

// isReplacementPair reports whether a delete+insert pair replaces related
// text. Spans without any word content (pure punctuation or whitespace
// swaps) always pair; the similarity threshold only answers the word-level
// question.
func isReplacementPair(oldSpan, newSpan string) bool {
	if !containsWord(oldSpan) && !containsWord(newSpan) {
		return true
	}
	return similarity.Score(oldSpan, newSpan) > replacementSimilarityThreshold
}

func containsWord(text string) bool {
	for _, token := range tokenizer.Tokenize(text) {
		if token.Kind == models.TokenWord {
			return true
		}
	}
	return false
}

// lastParagraph returns the paragraph index of the final span position,
// counting blank-line breaks across the old-side text.
func lastParagraph(ops []models.DiffOperation) int {
	last := 0
	for _, op := range ops {
		if op.Kind == models.DiffEqual || op.Kind == models.DiffDelete {
			last += strings.Count(op.Text, "\n\n")
		}
	}
	return last
}

// sectionLabel derives the section a paragraph belongs to. Only the opening
// and closing paragraphs carry labels; everything in between is body text.
func sectionLabel(paragraph, last int) string {
	switch {
	case paragraph == 0:
		return "intro"
	case paragraph == last:
		return "conclusion"
	default:
		return ""
	}
}

// buildChange classifies one span pair and attaches the generated ID and
// alternative. Spans that are blank on both sides carry no reviewable
// content and are dropped.
func (e *Engine) buildChange(oldSpan, newSpan string, loc models.Location, ordinal int) *models.ClassifiedChange {
	if strings.TrimSpace(oldSpan) == "" && strings.TrimSpace(newSpan) == "" {
		return nil
	}

	change := e.classifier.Classify(oldSpan, newSpan, loc)
	change.ID = changeID(ordinal, oldSpan, newSpan)

	if change.Type != models.ChangeTypeDeletion {
		change.Alternatives = []models.Alternative{
			{ID: change.ID + "-ai", Source: models.SourceAI, Text: newSpan},
		}
	}

	return change
}

// buildRewriteChange represents a capped diff as one whole-document change.
func (e *Engine) buildRewriteChange(oldText, newText string) *models.ClassifiedChange {
	id := changeID(0, oldText, newText)
	return &models.ClassifiedChange{
		ID:           id,
		Type:         models.ChangeTypeRewrite,
		Impact:       models.ImpactCritical,
		OriginalText: oldText,
		ProposedText: newText,
		Alternatives: []models.Alternative{
			{ID: id + "-ai", Source: models.SourceAI, Text: newText},
		},
		Status: models.StatusPending,
	}
}

// changeID derives a stable identifier from the span contents and position.
func changeID(ordinal int, oldSpan, newSpan string) string {
	hasher := sha256.New()
	fmt.Fprintf(hasher, "%d\x00%s\x00%s", ordinal, oldSpan, newSpan)
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}
