package matcher

// Config controls how an Engine evaluates a tree.
//
// Neither option changes which inputs a well-formed tree accepts; they trade
// speed and guard against runaway recursion.
//
// Example:
//
//	config := matcher.DefaultConfig()
//	config.MaxDepth = 10_000 // give up on grammars that recurse deeper
//	engine, err := matcher.NewEngine(root, config)
type Config struct {
	// EnableRunScan expands a repetition of a single-byte predicate with one
	// table scan instead of one fixpoint round per byte.
	// Default: true
	EnableRunScan bool

	// EnablePrefilter rejects inputs whose first byte cannot start a match
	// before any evaluation. The filter is computed once per Engine.
	// Default: true
	EnablePrefilter bool

	// MaxDepth caps how deeply evaluation may nest (tree depth plus Lazy
	// recursion). A path that would exceed it contributes no positions.
	// Zero means unlimited.
	// Default: 0
	MaxDepth int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableRunScan:   true,
		EnablePrefilter: true,
		MaxDepth:        0,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxDepth: 0 (unlimited) to 1,000,000
func (c Config) Validate() error {
	if c.MaxDepth < 0 || c.MaxDepth > 1_000_000 {
		return &ConfigError{
			Field:   "MaxDepth",
			Message: "must be between 0 and 1,000,000",
		}
	}
	return nil
}
