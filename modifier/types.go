// Package modifier provides tunable options and error definitions for
// the metric modifiers.
package modifier

import (
	"errors"
	"fmt"
)

const (
	// DefaultScaling is the Winkler prefix scaling factor p.
	DefaultScaling = 0.1

	// DefaultThreshold is the similarity a pair must exceed before the
	// Winkler prefix boost applies.
	DefaultThreshold = 0.7

	// prefixCap limits how many leading elements count toward the boost.
	prefixCap = 4
)

// Sentinel errors for modifier construction.
var (
	// ErrNilMetric is returned when a modifier is constructed without a
	// base metric.
	ErrNilMetric = errors.New("modifier: base metric is nil")

	// ErrScaling is returned when the Winkler scaling factor is negative
	// or so large that a full prefix boost would push the score past 1.
	ErrScaling = errors.New("modifier: scaling factor must be ≥ 0 and scaling×4 must not exceed 1")

	// ErrThreshold is returned when the Winkler boost threshold lies
	// outside [0,1].
	ErrThreshold = errors.New("modifier: boost threshold must lie in [0,1]")
)

// Option configures the Winkler modifier via functional arguments.
// An invalid Option is recorded internally and surfaced as an error by
// the constructor; comparisons themselves never fail.
type Option func(*config)

type config struct {
	scaling   float64
	threshold float64

	// internal error recorded during option parsing
	err error
}

// WithScaling sets the prefix scaling factor p (default 0.1).
// Requires p ≥ 0 and p·4 ≤ 1 so the boosted score stays within [0,1].
func WithScaling(p float64) Option {
	return func(c *config) {
		if p < 0 || p*prefixCap > 1 {
			c.err = fmt.Errorf("%w: %v", ErrScaling, p)

			return
		}
		c.scaling = p
	}
}

// WithThreshold sets the similarity a pair must exceed before the
// prefix boost applies (default 0.7).
func WithThreshold(t float64) Option {
	return func(c *config) {
		if t < 0 || t > 1 {
			c.err = fmt.Errorf("%w: %v", ErrThreshold, t)

			return
		}
		c.threshold = t
	}
}

// buildConfig applies opts over the defaults and reports the first
// recorded violation.
func buildConfig(opts []Option) (config, error) {
	c := config{scaling: DefaultScaling, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return config{}, c.err
	}

	return c, nil
}
