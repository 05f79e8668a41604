package config

// DiffConfig defines configuration for the word differ
type DiffConfig struct {
	// MaxEditDistance caps the Myers search depth before the differ falls
	// back to a coarse line-level diff.
	MaxEditDistance    int  `json:"max_edit_distance,omitempty" yaml:"max_edit_distance,omitempty" validate:"omitempty,min=1"`
	EnableLineFallback bool `json:"enable_line_fallback" yaml:"enable_line_fallback"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		MaxEditDistance:    1000,
		EnableLineFallback: true,
	}
}
