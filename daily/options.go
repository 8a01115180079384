// SPDX-License-Identifier: MIT

package daily

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Reference search budgets.
const (
	DefaultAttempts      = 5000
	DefaultFallbackLimit = 5000
)

// Option customizes a Selector.
// Option constructors panic on meaningless values; Select itself never panics.
type Option func(*config)

type config struct {
	rng           *rand.Rand
	attempts      int
	fallbackLimit int
	logger        *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		attempts:      DefaultAttempts,
		fallbackLimit: DefaultFallbackLimit,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed makes selection reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("daily: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithAttempts caps the random sampling phase. Zero skips it. Panics if n < 0.
func WithAttempts(n int) Option {
	if n < 0 {
		panic("daily: WithAttempts(n < 0)")
	}
	return func(c *config) {
		c.attempts = n
	}
}

// WithFallbackLimit caps the start words tried by the fallback phase.
// Zero disables the fallback. Panics if n < 0.
func WithFallbackLimit(n int) Option {
	if n < 0 {
		panic("daily: WithFallbackLimit(n < 0)")
	}
	return func(c *config) {
		c.fallbackLimit = n
	}
}

// WithLogger sets the logger for phase transitions. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("daily: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
