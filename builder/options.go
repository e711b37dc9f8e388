// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// options.go - functional options resolved into an immutable builderConfig.

package builder

import "fmt"

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	offset int
	err    error
}

// newBuilderConfig applies opts over the defaults (offset 0).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// id maps a constructor-local index to a vertex id.
func (c builderConfig) id(i int) int { return c.offset + i }

// WithOffset places constructor index 0 at vertex k.
func WithOffset(k int) BuilderOption {
	return func(c *builderConfig) {
		if k < 0 {
			c.err = fmt.Errorf("%w: offset %d < 0", ErrOptionViolation, k)
			return
		}
		c.offset = k
	}
}
