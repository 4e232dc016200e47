package editdist

import "github.com/katalvlaran/strdist/core"

// DamerauLevenshtein measures the minimum number of single-element
// insertions, deletions, substitutions and adjacent-element
// transpositions turning one sequence into the other.
//
// This is the unrestricted variant: a transposed pair may be edited
// again afterwards, so "CA" → "ABC" costs 2 (transpose, insert) where
// the restricted optimal-string-alignment variant would report 3.
//
// Immutable after construction; safe for concurrent use.
type DamerauLevenshtein[T comparable] struct {
	maxDistance int
	bounded     bool
}

// NewDamerauLevenshtein constructs a Damerau-Levenshtein metric.
// Without options the metric is unbounded; see WithMaxDistance.
// Returns ErrNegativeMaxDistance for a negative bound.
func NewDamerauLevenshtein[T comparable](opts ...Option) (*DamerauLevenshtein[T], error) {
	c, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return &DamerauLevenshtein[T]{maxDistance: c.maxDistance, bounded: c.bounded}, nil
}

// Distance returns Exact(d) for the true distance d, or Exceeded(k) as
// soon as d is provably ≥ the configured bound k.
//
// The DP keeps the full table plus a per-element map of the last row
// each element of a occurred in, giving O(1) transposition-cost
// lookups per cell. The table carries a sentinel row and column of
// value N+M so the transposition term needs no boundary branches.
func (dl *DamerauLevenshtein[T]) Distance(a, b []T) core.DistanceValue {
	a, b = trimCommon(a, b)
	if len(a) > len(b) {
		a, b = b, a
	}

	if dl.bounded && len(b)-len(a) >= dl.maxDistance {
		return core.Exceeded(float64(dl.maxDistance))
	}
	if len(a) == 0 {
		return core.Exact(float64(len(b)))
	}

	n, m := len(a), len(b)
	inf := n + m

	// rows 0..n and columns 0..m of the classic table live at offset +1;
	// index 0 is the sentinel.
	d := make([][]int, n+2)
	for i := range d {
		d[i] = make([]int, m+2)
	}
	d[0][0] = inf
	for i := 0; i <= n; i++ {
		d[i+1][0] = inf
		d[i+1][1] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j+1] = inf
		d[1][j+1] = j
	}

	// lastRow[x] = last row index at which element x occurred in a
	lastRow := make(map[T]int, n)

	for i := 1; i <= n; i++ {
		lastCol := 0 // last column in this row where a[i-1] == b[j-1]
		rowMin := i
		for j := 1; j <= m; j++ {
			k := lastRow[b[j-1]]
			l := lastCol
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
				lastCol = j
			}
			sub := d[i][j] + cost
			ins := d[i+1][j] + 1
			del := d[i][j+1] + 1
			trans := d[k][l] + (i - k - 1) + 1 + (j - l - 1)
			d[i+1][j+1] = min(sub, ins, del, trans)
			if d[i+1][j+1] < rowMin {
				rowMin = d[i+1][j+1]
			}
		}
		lastRow[a[i-1]] = i

		if dl.bounded && rowMin >= dl.maxDistance {
			return core.Exceeded(float64(dl.maxDistance))
		}
	}

	dist := d[n+1][m+1]
	if dl.bounded && dist >= dl.maxDistance {
		return core.Exceeded(float64(dl.maxDistance))
	}

	return core.Exact(float64(dist))
}

// NormalizedDistance divides the raw distance by max(len(a), len(b));
// two empty sequences yield 0. Under an Exceeded result the ratio is
// computed from the bound and is therefore a lower-bound estimate.
func (dl *DamerauLevenshtein[T]) NormalizedDistance(a, b []T) float64 {
	return normalize(dl.Distance(a, b).Value(), len(a), len(b))
}
