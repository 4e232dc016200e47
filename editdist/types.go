// Package editdist provides tunable options and error definitions for
// the edit-distance metrics.
package editdist

import (
	"errors"
	"fmt"
)

// ErrNegativeMaxDistance is returned by a constructor when
// WithMaxDistance is given a negative bound.
var ErrNegativeMaxDistance = errors.New("editdist: max distance cannot be negative")

// Option configures an edit-distance metric via functional arguments.
// An invalid Option is recorded internally and surfaced as an error by
// the constructor; comparisons themselves never fail.
type Option func(*config)

// config holds the bound shared by both edit-distance metrics.
type config struct {
	maxDistance int
	bounded     bool

	// internal error recorded during option parsing
	err error
}

// WithMaxDistance activates the early-exit bound k (k ≥ 0):
// once the distance is provably ≥ k the computation stops and reports
// Exceeded(k). Absence of this option means unbounded.
func WithMaxDistance(k int) Option {
	return func(c *config) {
		if k < 0 {
			c.err = fmt.Errorf("%w: %d", ErrNegativeMaxDistance, k)

			return
		}
		c.maxDistance = k
		c.bounded = true
	}
}

// buildConfig applies opts and reports the first recorded violation.
func buildConfig(opts []Option) (config, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return config{}, c.err
	}

	return c, nil
}

// trimCommon strips the longest shared prefix and suffix from a and b.
// Shared tails never contribute to the distance, so the DP only has to
// cover the distinct middles.
func trimCommon[T comparable](a, b []T) ([]T, []T) {
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	a, b = a[p:], b[p:]

	s := 0
	for s < len(a) && s < len(b) && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}

	return a[:len(a)-s], b[:len(b)-s]
}

// normalize maps a raw edit distance onto [0,1] by dividing by the
// longer original length; two empty sequences normalize to 0.
// For an Exceeded(k) result this yields k/max(la,lb), a lower bound on
// the exact ratio.
func normalize(d float64, la, lb int) float64 {
	longest := max(la, lb)
	if longest == 0 {
		return 0
	}

	return d / float64(longest)
}
