package editdist

import "github.com/katalvlaran/strdist/core"

// Levenshtein measures the minimum number of single-element insertions,
// deletions and substitutions turning one sequence into the other.
//
// The zero bound case: WithMaxDistance(0) makes every pair — including
// identical ones — report Exceeded(0), since any true distance is ≥ 0.
//
// Immutable after construction; safe for concurrent use.
type Levenshtein[T comparable] struct {
	maxDistance int
	bounded     bool
}

// NewLevenshtein constructs a Levenshtein metric. Without options the
// metric is unbounded; see WithMaxDistance for the early-exit bound.
// Returns ErrNegativeMaxDistance for a negative bound.
func NewLevenshtein[T comparable](opts ...Option) (*Levenshtein[T], error) {
	c, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Levenshtein[T]{maxDistance: c.maxDistance, bounded: c.bounded}, nil
}

// Distance returns Exact(d) for the true distance d, or Exceeded(k)
// as soon as d is provably ≥ the configured bound k.
//
// Two rolling rows keep memory at O(min(N,M)); after each row the row
// minimum — a lower bound on the final distance — is checked against
// the bound.
func (lv *Levenshtein[T]) Distance(a, b []T) core.DistanceValue {
	a, b = trimCommon(a, b)
	// keep the shorter sequence on the outer loop
	if len(a) > len(b) {
		a, b = b, a
	}

	// the length gap alone is a lower bound on the distance
	if lv.bounded && len(b)-len(a) >= lv.maxDistance {
		return core.Exceeded(float64(lv.maxDistance))
	}
	if len(a) == 0 {
		return core.Exact(float64(len(b)))
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		// every later cell derives from this row with non-negative
		// increments, so rowMin bounds the final distance from below
		if lv.bounded && rowMin >= lv.maxDistance {
			return core.Exceeded(float64(lv.maxDistance))
		}
		prev, curr = curr, prev
	}

	d := prev[len(b)]
	if lv.bounded && d >= lv.maxDistance {
		return core.Exceeded(float64(lv.maxDistance))
	}

	return core.Exact(float64(d))
}

// NormalizedDistance divides the raw distance by max(len(a), len(b));
// two empty sequences yield 0. Under an Exceeded result the ratio is
// computed from the bound and is therefore a lower-bound estimate.
func (lv *Levenshtein[T]) NormalizedDistance(a, b []T) float64 {
	return normalize(lv.Distance(a, b).Value(), len(a), len(b))
}
