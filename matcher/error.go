package matcher

import "errors"

// ErrNilNode is returned when an engine is built without a root node.
var ErrNilNode = errors.New("matcher: nil root node")

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "matcher: invalid config: " + e.Field + ": " + e.Message
}
