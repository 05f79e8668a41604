package config

// RulesConfig defines which merge rules a review run applies
type RulesConfig struct {
	// Preset names a shipped preset; ignored when RuleFile is set.
	Preset string `json:"preset,omitempty" yaml:"preset,omitempty" validate:"omitempty,preset"`
	// RuleFile points at a user-customized YAML/JSON rule list.
	RuleFile string `json:"rule_file,omitempty" yaml:"rule_file,omitempty"`
}

// NewDefaultRulesConfig creates default rules configuration
func NewDefaultRulesConfig() RulesConfig {
	return RulesConfig{
		Preset: "balanced-review",
	}
}
