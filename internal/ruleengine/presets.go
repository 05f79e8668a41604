package ruleengine

import (
	"github.com/aleister1102/redline/internal/common/errorwrapper"
	"github.com/aleister1102/redline/internal/models"
)

// MergePresets returns the shipped rule presets. A fresh copy is built on
// every call so callers can reorder or tweak rules without affecting the
// reference data.
func MergePresets() []models.MergePreset {
	return []models.MergePreset{
		quickReviewPreset(),
		balancedReviewPreset(),
		brandGuardianPreset(),
		thoroughReviewPreset(),
	}
}

// PresetByID looks up a shipped preset by its identifier.
func PresetByID(id string) (models.MergePreset, error) {
	for _, preset := range MergePresets() {
		if preset.ID == id {
			return preset, nil
		}
	}
	return models.MergePreset{}, errorwrapper.NewError("unknown preset '%s'", id)
}

// quickReviewPreset auto-handles everything mechanical and hides the noise,
// leaving only high-impact changes for review.
func quickReviewPreset() models.MergePreset {
	return models.MergePreset{
		ID:          "quick-review",
		Name:        "Quick Review",
		Description: "Auto-accept mechanical fixes and hide low-impact noise; surface only what matters.",
		Rules: []models.MergeRule{
			{
				ID:       "quick-mechanical",
				Name:     "Auto-accept mechanical fixes",
				Enabled:  true,
				Priority: 1,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypeGrammar, models.ChangeTypePunctuation, models.ChangeTypeSpelling},
				},
				Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferAI},
			},
			{
				ID:       "quick-small-word-choice",
				Name:     "Auto-accept small word swaps",
				Enabled:  true,
				Priority: 2,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypeWordChoice},
					Length:      &models.LengthCondition{Operator: models.OpLessOrEqual, Value: 3, Unit: models.UnitWords},
				},
				Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferAI},
			},
			{
				ID:       "quick-hide-low",
				Name:     "Hide low-impact changes",
				Enabled:  true,
				Priority: 3,
				Conditions: models.RuleConditions{
					Impacts: []models.ImpactLevel{models.ImpactLow},
				},
				Action: models.RuleAction{Type: models.ActionHide},
			},
			{
				ID:       "quick-show-critical",
				Name:     "Always surface critical changes",
				Enabled:  true,
				Priority: 4,
				Conditions: models.RuleConditions{
					Impacts: []models.ImpactLevel{models.ImpactCritical},
				},
				Action: models.RuleAction{Type: models.ActionShow},
			},
		},
	}
}

// balancedReviewPreset auto-handles only unambiguous fixes and escalates
// anything that changes meaning.
func balancedReviewPreset() models.MergePreset {
	return models.MergePreset{
		ID:          "balanced-review",
		Name:        "Balanced Review",
		Description: "Auto-accept unambiguous fixes; escalate structural and tonal edits for review.",
		Rules: []models.MergeRule{
			{
				ID:       "balanced-typos",
				Name:     "Auto-accept typo fixes",
				Enabled:  true,
				Priority: 1,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypePunctuation, models.ChangeTypeSpelling},
				},
				Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferAI},
			},
			{
				ID:       "balanced-structure",
				Name:     "Escalate structural edits",
				Enabled:  true,
				Priority: 2,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypeStructure},
				},
				Action: models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactCritical},
			},
			{
				ID:       "balanced-tone",
				Name:     "Escalate tone edits",
				Enabled:  true,
				Priority: 3,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypeTone},
				},
				Action: models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactImportant},
			},
			{
				ID:       "balanced-semantic-shift",
				Name:     "Escalate voice shifts",
				Enabled:  true,
				Priority: 4,
				Conditions: models.RuleConditions{
					SemanticShift: boolPtr(true),
				},
				Action: models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactImportant},
			},
		},
	}
}

// brandGuardianPreset treats voice and tone as the primary review concern.
func brandGuardianPreset() models.MergePreset {
	return models.MergePreset{
		ID:          "brand-guardian",
		Name:        "Brand Guardian",
		Description: "Escalate anything that shifts voice or tone; keep mechanical fixes on the author's wording.",
		Rules: []models.MergeRule{
			{
				ID:       "brand-voice-shift",
				Name:     "Escalate voice shifts",
				Enabled:  true,
				Priority: 1,
				Conditions: models.RuleConditions{
					SemanticShift: boolPtr(true),
				},
				Action: models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactCritical},
			},
			{
				ID:       "brand-tone",
				Name:     "Escalate tone edits",
				Enabled:  true,
				Priority: 2,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypeTone},
				},
				Action: models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactCritical},
			},
			{
				ID:       "brand-key-sections",
				Name:     "Escalate wording in key sections",
				Enabled:  true,
				Priority: 3,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypeWordChoice},
					Sections:    []string{"intro", "introduction", "conclusion"},
				},
				Action: models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactImportant},
			},
			{
				ID:       "brand-mechanical",
				Name:     "Auto-accept mechanical fixes with author wording",
				Enabled:  true,
				Priority: 4,
				Conditions: models.RuleConditions{
					ChangeTypes: []models.ChangeType{models.ChangeTypePunctuation, models.ChangeTypeSpelling},
				},
				Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferManual},
			},
		},
	}
}

// thoroughReviewPreset surfaces every change for a human decision.
func thoroughReviewPreset() models.MergePreset {
	return models.MergePreset{
		ID:          "thorough-review",
		Name:        "Thorough Review",
		Description: "Surface every change; nothing is auto-handled.",
		Rules: []models.MergeRule{
			{
				ID:       "thorough-show-all",
				Name:     "Surface every change",
				Enabled:  true,
				Priority: 1,
				Action:   models.RuleAction{Type: models.ActionShow},
			},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
