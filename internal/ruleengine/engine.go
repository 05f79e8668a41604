// Package ruleengine resolves classified changes into accept/show/hide
// decisions by evaluating an ordered, condition-gated rule list.
package ruleengine

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aleister1102/redline/internal/models"
)

// RuleEngine evaluates merge rules against classified changes
type RuleEngine struct {
	logger zerolog.Logger
}

// NewRuleEngine creates a new RuleEngine instance
func NewRuleEngine(logger zerolog.Logger) *RuleEngine {
	return &RuleEngine{
		logger: logger.With().Str("component", "RuleEngine").Logger(),
	}
}

// ApplyRules resolves every change against the rule list and returns a new
// change list; the input is not mutated. Enabled rules are evaluated in
// ascending priority order and the first rule whose conditions all hold is
// applied — a change is visited by at most one rule. Changes no rule matches
// stay pending with their computed impact. An empty or fully disabled rule
// list is valid and touches nothing.
func (re *RuleEngine) ApplyRules(changes []*models.ClassifiedChange, rules []models.MergeRule) []*models.ClassifiedChange {
	ordered := orderedEnabledRules(rules)

	result := make([]*models.ClassifiedChange, len(changes))
	for i, change := range changes {
		resolved := change.Clone()

		for _, rule := range ordered {
			if !matchesConditions(rule.Conditions, resolved) {
				continue
			}
			re.applyAction(rule, resolved)
			break
		}

		result[i] = resolved
	}

	return result
}

// applyAction mutates the (already cloned) change per the matched rule.
func (re *RuleEngine) applyAction(rule models.MergeRule, change *models.ClassifiedChange) {
	switch rule.Action.Type {
	case models.ActionAutoAccept:
		change.Status = models.StatusAutoHandled
		change.RuleApplied = rule.Name
		if rule.Action.PreferVersion != "" {
			if alt := preferredAlternative(change.Alternatives, rule.Action.PreferVersion); alt != nil {
				change.SelectedAlternativeID = alt.ID
			}
		}
	case models.ActionHide:
		change.Status = models.StatusAutoHandled
		change.RuleApplied = rule.Name
	case models.ActionShow:
		change.RuleApplied = rule.Name
		if rule.Action.SetPriority != "" {
			change.Impact = rule.Action.SetPriority
		}
	}

	re.logger.Debug().
		Str("rule", rule.Name).
		Str("change_id", change.ID).
		Str("action", string(rule.Action.Type)).
		Str("status", string(change.Status)).
		Msg("Rule applied to change")
}

// preferredAlternative resolves a version preference to a concrete
// alternative, or nil when no alternative qualifies.
func preferredAlternative(alternatives []models.Alternative, pref models.VersionPreference) *models.Alternative {
	for i := range alternatives {
		alt := &alternatives[i]
		switch pref {
		case models.PreferManual:
			if alt.Source == models.SourceManual {
				return alt
			}
		case models.PreferAI:
			if alt.Source != models.SourceManual {
				return alt
			}
		case models.PreferSelected:
			return alt
		}
	}
	return nil
}

// orderedEnabledRules filters to enabled rules with a recognized action and
// sorts them ascending by priority. The sort is stable so equal priorities
// keep their list order.
func orderedEnabledRules(rules []models.MergeRule) []models.MergeRule {
	ordered := make([]models.MergeRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		switch rule.Action.Type {
		case models.ActionAutoAccept, models.ActionShow, models.ActionHide:
			ordered = append(ordered, rule)
		default:
			// Unknown action types fail closed.
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	return ordered
}
