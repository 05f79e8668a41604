package differ

// DiffConfig defines configuration for the word differ.
type DiffConfig struct {
	// MaxEditDistance caps the Myers search depth D. Diffs between wildly
	// dissimilar documents blow up quadratically; beyond the cap the differ
	// falls back to a coarse line-level diff.
	MaxEditDistance int
	// EnableLineFallback controls whether the capped differ degrades to a
	// line-level diff instead of failing.
	EnableLineFallback bool
}

// DefaultDiffConfig returns default diff configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		MaxEditDistance:    1000,
		EnableLineFallback: true,
	}
}
