package binomial

import (
	"cmp"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
)

const (
	// Name used for the logger when none is configured.
	defaultName = "binomial"

	// Default log level when none is configured.
	defaultLogLevel = "INFO"
)

// Configuration used when creating an arena and the heaps that
// live inside it.
type Configuration[T cmp.Ordered] struct {
	// Name of the arena, used to name the logger.
	Name string

	// Sentinel is the reserved "minus infinity" value. Every key
	// stored in a heap must be strictly greater than it, the delete
	// operation relies on this to move a node up to its root.
	Sentinel T

	// How many node slots to reserve up front.
	Capacity int

	// User provided logger to be used.
	Logger hclog.Logger

	// LogLevel represents a log level.
	LogLevel string
}

// DefaultConfiguration creates a configuration ready to be used,
// reserving the given sentinel.
func DefaultConfiguration[T cmp.Ordered](sentinel T) *Configuration[T] {
	return &Configuration[T]{
		Name:     defaultName,
		Sentinel: sentinel,
		LogLevel: defaultLogLevel,
	}
}

// ValidateConfig verifies if the given configuration is valid to be used,
// filling a logger if none was provided.
func ValidateConfig[T cmp.Ordered](config *Configuration[T]) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}

	if config.Capacity < 0 {
		return fmt.Errorf("invalid capacity %d, must not be negative", config.Capacity)
	}

	if isNaN(config.Sentinel) {
		return fmt.Errorf("sentinel must not be NaN")
	}

	if len(config.Name) == 0 {
		config.Name = defaultName
	}

	if config.Logger == nil {
		if len(config.LogLevel) == 0 {
			config.LogLevel = defaultLogLevel
		}

		level := hclog.LevelFromString(config.LogLevel)
		if level == hclog.NoLevel {
			return fmt.Errorf("unknown log level %q", config.LogLevel)
		}

		config.Logger = hclog.New(&hclog.LoggerOptions{
			Name:   config.Name,
			Level:  level,
			Output: os.Stdout,
		})
	}

	return nil
}

// Only true for a floating point NaN.
func isNaN[T cmp.Ordered](v T) bool {
	return v != v
}
