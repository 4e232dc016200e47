package align

import "github.com/katalvlaran/strdist/core"

// Jaro scores how well two sequences line up: equal elements within a
// window of max(N,M)/2−1 positions count as matches, matched pairs out
// of relative order count as half transpositions, and
//
//	sim = (m/N + m/M + (m−t)/m) / 3
//
// with m matches and t the transposition count. Distance is 1−sim.
//
// Stateless; safe for concurrent use.
type Jaro[T comparable] struct{}

// NewJaro constructs a Jaro metric. It takes no parameters and never
// fails.
func NewJaro[T comparable]() *Jaro[T] { return &Jaro[T]{} }

// Distance returns Exact of the Jaro distance; the raw value already
// lies in [0,1].
func (j *Jaro[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(j.NormalizedDistance(a, b))
}

// NormalizedDistance returns 1 − similarity. Two empty sequences are
// identical (0); one empty sequence or zero matches yields 1.
func (j *Jaro[T]) NormalizedDistance(a, b []T) float64 {
	return 1 - j.similarity(a, b)
}

// similarity computes the Jaro similarity in [0,1].
func (j *Jaro[T]) similarity(a, b []T) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, la)
	bMatched := make([]bool, lb)
	matches := 0
	for i := 0; i < la; i++ {
		lo := max(0, i-window)
		hi := min(lb-1, i+window)
		for k := lo; k <= hi; k++ {
			if !bMatched[k] && a[i] == b[k] {
				aMatched[i] = true
				bMatched[k] = true
				matches++

				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// count matched pairs that ended up out of relative order
	t := 0
	k := 0
	for i := 0; i < la; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			t++
		}
		k++
	}

	m := float64(matches)

	return (m/float64(la) + m/float64(lb) + (m-float64(t)/2)/m) / 3
}

// JaroWinkler boosts the Jaro similarity of pairs that share a prefix:
// when sim exceeds the threshold, sim += l·p·(1−sim) with l the common
// prefix length capped at 4 and p the scaling factor, clamped to 1.
//
// Immutable after construction; safe for concurrent use.
type JaroWinkler[T comparable] struct {
	jaro      Jaro[T]
	scaling   float64
	threshold float64
}

// NewJaroWinkler constructs a Jaro-Winkler metric with optional
// WithScaling (default 0.1) and WithThreshold (default 0.7).
// Returns ErrScaling or ErrThreshold for out-of-range parameters.
func NewJaroWinkler[T comparable](opts ...Option) (*JaroWinkler[T], error) {
	c, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return &JaroWinkler[T]{scaling: c.scaling, threshold: c.threshold}, nil
}

// Distance returns Exact of the Jaro-Winkler distance; the raw value
// already lies in [0,1].
func (jw *JaroWinkler[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(jw.NormalizedDistance(a, b))
}

// NormalizedDistance returns 1 − boosted similarity.
func (jw *JaroWinkler[T]) NormalizedDistance(a, b []T) float64 {
	sim := jw.jaro.similarity(a, b)
	if sim > jw.threshold {
		l := commonPrefix(a, b, prefixCap)
		sim += float64(l) * jw.scaling * (1 - sim)
		if sim > 1 {
			sim = 1
		}
	}

	return 1 - sim
}
