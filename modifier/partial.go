package modifier

import "github.com/katalvlaran/strdist/core"

// Partial aligns the shorter sequence against every window of equal
// length in the longer one and keeps the minimum base distance — the
// "best matching substring" semantics of fuzzy partial matching.
// Equal-length inputs delegate to the base metric directly.
//
// Immutable after construction; safe for concurrent use.
type Partial[T comparable] struct {
	base core.Metric[T]
}

// NewPartial wraps base with best-window alignment.
// Returns ErrNilMetric if base is nil.
func NewPartial[T comparable](base core.Metric[T]) (*Partial[T], error) {
	if base == nil {
		return nil, ErrNilMetric
	}

	return &Partial[T]{base: base}, nil
}

// Distance returns Exact of the normalized distance; modifiers live in
// normalized space.
func (p *Partial[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(p.NormalizedDistance(a, b))
}

// NormalizedDistance returns the minimum base distance of the shorter
// sequence over every len(short) window of the longer. An empty short
// side matches the empty window at any offset, yielding 0.
func (p *Partial[T]) NormalizedDistance(a, b []T) float64 {
	if len(a) == len(b) {
		return p.base.NormalizedDistance(a, b)
	}

	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}

	best := 1.0
	for i := 0; i+len(short) <= len(long); i++ {
		d := p.base.NormalizedDistance(short, long[i:i+len(short)])
		if d < best {
			best = d
		}
		if best == 0 {
			break
		}
	}

	return best
}
