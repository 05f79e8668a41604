package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/aleister1102/redline/internal/common/errorwrapper"
)

// GlobalConfig holds all configuration for the application
type GlobalConfig struct {
	LogConfig   LogConfig   `json:"log_config" yaml:"log_config"`
	DiffConfig  DiffConfig  `json:"diff_config" yaml:"diff_config"`
	RulesConfig RulesConfig `json:"rules_config" yaml:"rules_config"`
}

// NewDefaultGlobalConfig creates a GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:   NewDefaultLogConfig(),
		DiffConfig:  NewDefaultDiffConfig(),
		RulesConfig: NewDefaultRulesConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// A missing file is not an error: defaults are returned so the tool works
// with zero configuration.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	path := GetConfigPath(providedPath)
	if path == "" {
		if providedPath != "" {
			return nil, errorwrapper.NewError("config file '%s' not found", providedPath)
		}
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse YAML config")
		}
	case ".json":
		if err := json.Unmarshal(content, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse JSON config")
		}
	default:
		return nil, errorwrapper.NewError("unsupported config file extension '%s'", filepath.Ext(path))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("Configuration loaded")
	return cfg, nil
}
