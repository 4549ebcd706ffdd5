// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil logger);
//     Build itself never panics.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "log/slog"

// Option customizes a Build call by mutating a builderConfig.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by Build. Passed by value.
type builderConfig struct {
	logger    *slog.Logger
	keepEmpty bool
	capacity  int
}

// newBuilderConfig applies opts in order over the defaults:
// discard logger, skip empty casts, no capacity hint.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes load-time warnings and the build summary to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithKeepEmptyMovies lists titles that have no cast in Catalog's movie set.
// They still never become graph vertices, and are not reported as skipped.
func WithKeepEmptyMovies() Option {
	return func(c *builderConfig) { c.keepEmpty = true }
}

// WithCapacityHint pre-sizes the graph for about n vertices.
// Panics on negative n.
func WithCapacityHint(n int) Option {
	if n < 0 {
		panic("builder: WithCapacityHint(n < 0)")
	}
	return func(c *builderConfig) { c.capacity = n }
}
