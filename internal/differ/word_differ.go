// Package differ computes word-granularity edit scripts between two document
// versions using the Myers shortest-edit-script algorithm, with a capped
// search depth and a line-level fallback for near-total rewrites.
package differ

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/redline/internal/models"
	"github.com/aleister1102/redline/internal/tokenizer"
)

// WordDiffer generates word-level differences between document versions
type WordDiffer struct {
	config   DiffConfig
	fallback *lineFallbackDiffer
	stats    *DiffStatsCalculator
	logger   zerolog.Logger
}

// WordDifferBuilder provides a fluent interface for creating WordDiffer
type WordDifferBuilder struct {
	config DiffConfig
	logger zerolog.Logger
}

// NewWordDifferBuilder creates a new builder
func NewWordDifferBuilder(logger zerolog.Logger) *WordDifferBuilder {
	return &WordDifferBuilder{
		config: DefaultDiffConfig(),
		logger: logger,
	}
}

// WithDiffConfig sets the diff configuration
func (b *WordDifferBuilder) WithDiffConfig(cfg DiffConfig) *WordDifferBuilder {
	b.config = cfg
	return b
}

// Build creates a new WordDiffer instance
func (b *WordDifferBuilder) Build() *WordDiffer {
	return &WordDiffer{
		config:   b.config,
		fallback: newLineFallbackDiffer(),
		stats:    NewDiffStatsCalculator(),
		logger:   b.logger.With().Str("component", "WordDiffer").Logger(),
	}
}

// NewWordDiffer creates a WordDiffer with default configuration
func NewWordDiffer(logger zerolog.Logger) *WordDiffer {
	return NewWordDifferBuilder(logger).Build()
}

// Diff computes the compacted edit script between two text versions. The
// round-trip invariant holds on the result: concatenating equal+delete text
// reconstructs oldText, concatenating equal+insert text reconstructs newText.
func (wd *WordDiffer) Diff(oldText, newText string) (*models.WordDiffResult, error) {
	startTime := time.Now()

	// Identical inputs short-circuit to a single spanning equal operation.
	if oldText == newText {
		result := &models.WordDiffResult{
			Stats:            models.DiffStatistics{IsIdentical: true},
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		}
		if oldText != "" {
			result.Operations = []models.DiffOperation{{Kind: models.DiffEqual, Text: oldText, SourceIndex: 0}}
		}
		return result, nil
	}

	oldTokens := tokenizer.Tokenize(oldText)
	newTokens := tokenizer.Tokenize(newText)

	ops, err := myersDiff(oldTokens, newTokens, wd.config.MaxEditDistance)
	if err != nil {
		if !errors.Is(err, errEditDistanceExceeded) || !wd.config.EnableLineFallback {
			return nil, err
		}

		wd.logger.Debug().
			Int("old_tokens", len(oldTokens)).
			Int("new_tokens", len(newTokens)).
			Int("max_edit_distance", wd.config.MaxEditDistance).
			Msg("Edit distance cap exceeded, falling back to line-level diff")

		fallbackOps := CompactOperations(wd.fallback.Diff(oldText, newText))
		return &models.WordDiffResult{
			Operations:       fallbackOps,
			Stats:            wd.stats.CalculateStats(fallbackOps),
			Fallback:         true,
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		}, nil
	}

	compacted := CompactOperations(ops)

	return &models.WordDiffResult{
		Operations:       compacted,
		Stats:            wd.stats.CalculateStats(compacted),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	}, nil
}

// DiffStatsCalculator calculates statistics from diff operations
type DiffStatsCalculator struct{}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// CalculateStats computes word counts from compacted diff operations
func (dsc *DiffStatsCalculator) CalculateStats(ops []models.DiffOperation) models.DiffStatistics {
	stats := models.DiffStatistics{IsIdentical: true}

	for _, op := range ops {
		switch op.Kind {
		case models.DiffInsert:
			stats.WordsAdded += countWords(op.Text)
			stats.IsIdentical = false
		case models.DiffDelete:
			stats.WordsDeleted += countWords(op.Text)
			stats.IsIdentical = false
		}
	}

	return stats
}

func countWords(text string) int {
	count := 0
	for _, tok := range tokenizer.Tokenize(text) {
		if tok.Kind == models.TokenWord {
			count++
		}
	}
	return count
}
