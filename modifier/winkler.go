package modifier

import "github.com/katalvlaran/strdist/core"

// Winkler generalizes the Jaro-Winkler prefix boost to any base
// metric: the base's normalized distance is converted to a similarity,
// boosted by l·p·(1−sim) when it exceeds the threshold — l being the
// common prefix length of the inputs capped at 4 — and converted back.
//
// Immutable after construction; safe for concurrent use.
type Winkler[T comparable] struct {
	base      core.Metric[T]
	scaling   float64
	threshold float64
}

// NewWinkler wraps base with a prefix boost, with optional WithScaling
// (default 0.1) and WithThreshold (default 0.7). Returns ErrNilMetric,
// ErrScaling or ErrThreshold on invalid configuration.
func NewWinkler[T comparable](base core.Metric[T], opts ...Option) (*Winkler[T], error) {
	if base == nil {
		return nil, ErrNilMetric
	}
	c, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Winkler[T]{base: base, scaling: c.scaling, threshold: c.threshold}, nil
}

// Distance returns Exact of the normalized distance; modifiers live in
// normalized space.
func (w *Winkler[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(w.NormalizedDistance(a, b))
}

// NormalizedDistance applies the prefix boost on top of the base
// metric's normalized distance.
func (w *Winkler[T]) NormalizedDistance(a, b []T) float64 {
	sim := 1 - w.base.NormalizedDistance(a, b)
	if sim > w.threshold {
		l := commonPrefix(a, b, prefixCap)
		sim += float64(l) * w.scaling * (1 - sim)
		if sim > 1 {
			sim = 1
		}
	}

	return 1 - sim
}

// commonPrefix counts equal leading elements of a and b, capped at limit.
func commonPrefix[T comparable](a, b []T, limit int) int {
	n := min(len(a), len(b), limit)
	p := 0
	for p < n && a[p] == b[p] {
		p++
	}

	return p
}
