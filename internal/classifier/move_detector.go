package classifier

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aleister1102/redline/internal/models"
	"github.com/aleister1102/redline/internal/similarity"
)

// moveSimilarityThreshold is the minimum similarity between a deleted span
// and an inserted span for the pair to be reported as one move.
const moveSimilarityThreshold = 0.8

// MoveDetector pairs unmatched deletions with insertions that carry the same
// content, so a relocated paragraph surfaces as one move instead of two
// unrelated edits.
type MoveDetector struct {
	logger zerolog.Logger
}

// NewMoveDetector creates a new MoveDetector instance
func NewMoveDetector(logger zerolog.Logger) *MoveDetector {
	return &MoveDetector{
		logger: logger.With().Str("component", "MoveDetector").Logger(),
	}
}

// DetectMoves returns a new change list with matched deletion/insertion pairs
// replaced by single move changes. Pairing is greedy first-match over a
// stable location ordering, which keeps the output deterministic. The input
// slice is not modified.
func (md *MoveDetector) DetectMoves(changes []*models.ClassifiedChange) []*models.ClassifiedChange {
	working := make([]*models.ClassifiedChange, len(changes))
	for i, change := range changes {
		working[i] = change.Clone()
	}

	// Stable order by location so tie-breaking does not depend on caller
	// iteration order.
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].Location.Paragraph < working[j].Location.Paragraph
	})

	claimed := make(map[int]bool)
	moved := make(map[int]*models.ClassifiedChange)

	for di, deletion := range working {
		if deletion.Type != models.ChangeTypeDeletion {
			continue
		}

		for ii, insertion := range working {
			if insertion.Type != models.ChangeTypeAddition || claimed[ii] || ii == di {
				continue
			}

			score := similarity.Score(deletion.OriginalText, insertion.ProposedText)
			if score <= moveSimilarityThreshold {
				continue
			}

			md.logger.Debug().
				Int("from_paragraph", deletion.Location.Paragraph).
				Int("to_paragraph", insertion.Location.Paragraph).
				Float64("similarity", score).
				Msg("Paired deletion and insertion as move")

			moved[di] = md.buildMove(deletion, insertion)
			claimed[ii] = true
			break
		}
	}

	result := make([]*models.ClassifiedChange, 0, len(working))
	for i, change := range working {
		if move, ok := moved[i]; ok {
			result = append(result, move)
			continue
		}
		if claimed[i] {
			continue
		}
		result = append(result, change)
	}

	return result
}

// buildMove collapses a deletion/insertion pair into one move change carrying
// the origin text and the destination text.
func (md *MoveDetector) buildMove(deletion, insertion *models.ClassifiedChange) *models.ClassifiedChange {
	id := deletion.ID
	if id == "" {
		id = insertion.ID
	}

	return &models.ClassifiedChange{
		ID:           id,
		Type:         models.ChangeTypeMove,
		Impact:       models.ImpactNormal,
		Location:     insertion.Location,
		OriginalText: deletion.OriginalText,
		ProposedText: insertion.ProposedText,
		Alternatives: insertion.Alternatives,
		Status:       models.StatusPending,
	}
}
