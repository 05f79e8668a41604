package ruleengine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/redline/internal/models"
)

func pendingChange(changeType models.ChangeType, impact models.ImpactLevel) *models.ClassifiedChange {
	return &models.ClassifiedChange{
		ID:           "change-1",
		Type:         changeType,
		Impact:       impact,
		OriginalText: "original words here",
		ProposedText: "proposed words here",
		Alternatives: []models.Alternative{
			{ID: "alt-manual", Source: models.SourceManual, Text: "manual text"},
			{ID: "alt-ai", Source: models.SourceAI, Text: "ai text"},
		},
		Status: models.StatusPending,
	}
}

func TestApplyRules_EmptyRuleListTouchesNothing(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeWordChoice, models.ImpactNormal)}

	result := re.ApplyRules(changes, nil)

	require.Len(t, result, 1)
	assert.Equal(t, models.StatusPending, result[0].Status)
	assert.Empty(t, result[0].RuleApplied)
}

func TestApplyRules_PriorityOrderWins(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeSpelling, models.ImpactLow)}

	rules := []models.MergeRule{
		{
			ID: "r2", Name: "Second", Enabled: true, Priority: 2,
			Action: models.RuleAction{Type: models.ActionHide},
		},
		{
			ID: "r1", Name: "First", Enabled: true, Priority: 1,
			Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferAI},
		},
	}

	result := re.ApplyRules(changes, rules)

	assert.Equal(t, "First", result[0].RuleApplied)
	assert.Equal(t, models.StatusAutoHandled, result[0].Status)
	assert.Equal(t, "alt-ai", result[0].SelectedAlternativeID)
}

func TestApplyRules_DisabledRuleSkipped(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeSpelling, models.ImpactLow)}

	rules := []models.MergeRule{
		{
			ID: "r1", Name: "Disabled", Enabled: false, Priority: 1,
			Action: models.RuleAction{Type: models.ActionAutoAccept},
		},
	}

	result := re.ApplyRules(changes, rules)

	assert.Equal(t, models.StatusPending, result[0].Status)
}

func TestApplyRules_FirstMatchOnly(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeTone, models.ImpactImportant)}

	rules := []models.MergeRule{
		{
			ID: "show", Name: "Show tone", Enabled: true, Priority: 1,
			Conditions: models.RuleConditions{ChangeTypes: []models.ChangeType{models.ChangeTypeTone}},
			Action:     models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactCritical},
		},
		{
			ID: "hide", Name: "Hide everything", Enabled: true, Priority: 2,
			Action: models.RuleAction{Type: models.ActionHide},
		},
	}

	result := re.ApplyRules(changes, rules)

	// The show rule matched first; the hide rule must not also fire.
	assert.Equal(t, models.StatusPending, result[0].Status)
	assert.Equal(t, models.ImpactCritical, result[0].Impact)
	assert.Equal(t, "Show tone", result[0].RuleApplied)
}

func TestApplyRules_PreferManual(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeWordChoice, models.ImpactNormal)}

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Accept manual", Enabled: true, Priority: 1,
			Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferManual},
		},
	}

	result := re.ApplyRules(changes, rules)

	assert.Equal(t, "alt-manual", result[0].SelectedAlternativeID)
}

func TestApplyRules_PreferSelectedTakesFirst(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeWordChoice, models.ImpactNormal)}

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Accept selected", Enabled: true, Priority: 1,
			Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferSelected},
		},
	}

	result := re.ApplyRules(changes, rules)

	assert.Equal(t, "alt-manual", result[0].SelectedAlternativeID)
}

func TestApplyRules_HideDoesNotSelectAlternative(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeWordChoice, models.ImpactLow)}

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Hide low", Enabled: true, Priority: 1,
			Conditions: models.RuleConditions{Impacts: []models.ImpactLevel{models.ImpactLow}},
			Action:     models.RuleAction{Type: models.ActionHide},
		},
	}

	result := re.ApplyRules(changes, rules)

	assert.Equal(t, models.StatusAutoHandled, result[0].Status)
	assert.Empty(t, result[0].SelectedAlternativeID)
}

func TestApplyRules_LengthCondition(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())

	short := pendingChange(models.ChangeTypeWordChoice, models.ImpactNormal)
	short.OriginalText = "two words"
	short.ProposedText = "other words"

	long := pendingChange(models.ChangeTypeWordChoice, models.ImpactNormal)
	long.OriginalText = "this span has considerably more words than the threshold allows"
	long.ProposedText = ""

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Accept short", Enabled: true, Priority: 1,
			Conditions: models.RuleConditions{
				Length: &models.LengthCondition{Operator: models.OpLessOrEqual, Value: 3, Unit: models.UnitWords},
			},
			Action: models.RuleAction{Type: models.ActionAutoAccept},
		},
	}

	result := re.ApplyRules([]*models.ClassifiedChange{short, long}, rules)

	assert.Equal(t, models.StatusAutoHandled, result[0].Status)
	assert.Equal(t, models.StatusPending, result[1].Status)
}

func TestApplyRules_MalformedOperatorFailsClosed(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeWordChoice, models.ImpactNormal)}

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Bad operator", Enabled: true, Priority: 1,
			Conditions: models.RuleConditions{
				Length: &models.LengthCondition{Operator: "~=", Value: 3, Unit: models.UnitWords},
			},
			Action: models.RuleAction{Type: models.ActionAutoAccept},
		},
	}

	result := re.ApplyRules(changes, rules)

	assert.Equal(t, models.StatusPending, result[0].Status)
}

func TestApplyRules_UnknownActionFailsClosed(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	changes := []*models.ClassifiedChange{pendingChange(models.ChangeTypeWordChoice, models.ImpactNormal)}

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Bad action", Enabled: true, Priority: 1,
			Action: models.RuleAction{Type: "auto-reject"},
		},
	}

	result := re.ApplyRules(changes, rules)

	assert.Equal(t, models.StatusPending, result[0].Status)
}

func TestApplyRules_SemanticShiftCondition(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())

	shifted := pendingChange(models.ChangeTypeTone, models.ImpactImportant)
	shifted.SemanticShift = true
	plain := pendingChange(models.ChangeTypeTone, models.ImpactImportant)

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Escalate shifts", Enabled: true, Priority: 1,
			Conditions: models.RuleConditions{SemanticShift: boolPtr(true)},
			Action:     models.RuleAction{Type: models.ActionShow, SetPriority: models.ImpactCritical},
		},
	}

	result := re.ApplyRules([]*models.ClassifiedChange{shifted, plain}, rules)

	assert.Equal(t, models.ImpactCritical, result[0].Impact)
	assert.Equal(t, models.ImpactImportant, result[1].Impact)
}

func TestApplyRules_InputNotMutated(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	change := pendingChange(models.ChangeTypeSpelling, models.ImpactLow)

	rules := []models.MergeRule{
		{
			ID: "r", Name: "Accept all", Enabled: true, Priority: 1,
			Action: models.RuleAction{Type: models.ActionAutoAccept, PreferVersion: models.PreferAI},
		},
	}

	re.ApplyRules([]*models.ClassifiedChange{change}, rules)

	assert.Equal(t, models.StatusPending, change.Status)
	assert.Empty(t, change.SelectedAlternativeID)
}

func TestQuickReviewPreset_AutoHandlesGrammar(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	preset, err := PresetByID("quick-review")
	require.NoError(t, err)

	change := pendingChange(models.ChangeTypeGrammar, models.ImpactLow)

	result := re.ApplyRules([]*models.ClassifiedChange{change}, preset.Rules)

	require.Len(t, result, 1)
	assert.Equal(t, models.StatusAutoHandled, result[0].Status)
	assert.Equal(t, "alt-ai", result[0].SelectedAlternativeID)
}

func TestThoroughReviewPreset_KeepsEverythingPending(t *testing.T) {
	re := NewRuleEngine(zerolog.Nop())
	preset, err := PresetByID("thorough-review")
	require.NoError(t, err)

	changes := []*models.ClassifiedChange{
		pendingChange(models.ChangeTypeSpelling, models.ImpactLow),
		pendingChange(models.ChangeTypeStructure, models.ImpactCritical),
	}

	result := re.ApplyRules(changes, preset.Rules)

	for _, change := range result {
		assert.Equal(t, models.StatusPending, change.Status)
	}
}

func TestMergePresets_AllValid(t *testing.T) {
	presets := MergePresets()

	require.Len(t, presets, 4)
	for _, preset := range presets {
		assert.NoError(t, ValidateRules(preset.Rules), "preset %s", preset.ID)
	}
}

func TestPresetByID_Unknown(t *testing.T) {
	_, err := PresetByID("nope")
	assert.Error(t, err)
}
