package logger

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/redline/internal/config"
)

// ConfigConverter converts application log config into logger config
type ConfigConverter struct{}

// NewConfigConverter creates a new config converter
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{}
}

// ConvertConfig maps config.LogConfig onto LoggerConfig, applying defaults
// for unset fields.
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) LoggerConfig {
	loggerConfig := DefaultLoggerConfig()

	if level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil && cfg.LogLevel != "" {
		loggerConfig.Level = level
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		loggerConfig.Format = FormatJSON
	case "text":
		loggerConfig.Format = FormatText
	case "console", "":
		loggerConfig.Format = FormatConsole
	}

	if cfg.LogFile != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = cfg.LogFile
	}
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}

	return loggerConfig
}
