package ruleengine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aleister1102/redline/internal/common/errorwrapper"
	"github.com/aleister1102/redline/internal/models"
)

// ruleFile is the on-disk schema for user-customized rule sets.
type ruleFile struct {
	Rules []models.MergeRule `json:"rules" yaml:"rules"`
}

// LoadRules reads a YAML or JSON rule file and validates it. Validation
// rejects unknown actions, operators, and units up front; anything that
// slips through still fails closed at evaluation time.
func LoadRules(path string) ([]models.MergeRule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read rule file")
	}

	var file ruleFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse YAML rule file")
		}
	case ".json":
		if err := json.Unmarshal(content, &file); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse JSON rule file")
		}
	default:
		return nil, errorwrapper.NewError("unsupported rule file extension '%s'", filepath.Ext(path))
	}

	if err := ValidateRules(file.Rules); err != nil {
		return nil, err
	}

	return file.Rules, nil
}

// ValidateRules checks a rule list against the schema constraints.
func ValidateRules(rules []models.MergeRule) error {
	validate := validator.New()

	for i := range rules {
		if err := validate.Struct(&rules[i]); err != nil {
			return errorwrapper.WrapError(err, "invalid merge rule '"+rules[i].ID+"'")
		}
	}

	return nil
}
