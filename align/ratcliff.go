package align

import "github.com/katalvlaran/strdist/core"

// RatcliffObershelp scores two sequences by their longest common
// contiguous run, recursing on the unmatched left and right remainders
// and summing the matched lengths:
//
//	sim = 2·matched / (N+M)
//
// Distance is 1−sim. Also known as "gestalt pattern matching".
//
// Stateless; safe for concurrent use.
type RatcliffObershelp[T comparable] struct{}

// NewRatcliffObershelp constructs a Ratcliff-Obershelp metric. It takes
// no parameters and never fails.
func NewRatcliffObershelp[T comparable]() *RatcliffObershelp[T] {
	return &RatcliffObershelp[T]{}
}

// Distance returns Exact of the Ratcliff-Obershelp distance; the raw
// value already lies in [0,1].
func (r *RatcliffObershelp[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(r.NormalizedDistance(a, b))
}

// NormalizedDistance returns 1 − 2·matched/(N+M). Two empty sequences
// are identical (0); a pair with no common run and at least one
// non-empty side yields 1.
func (r *RatcliffObershelp[T]) NormalizedDistance(a, b []T) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}

	return 1 - 2*float64(matchedLen(a, b))/float64(total)
}

// matchedLen sums the longest common run of a and b with, recursively,
// the matched lengths of the left and right remainders.
func matchedLen[T comparable](a, b []T) int {
	ia, ib, n := longestCommonRun(a, b)
	if n == 0 {
		return 0
	}

	return n + matchedLen(a[:ia], b[:ib]) + matchedLen(a[ia+n:], b[ib+n:])
}

// longestCommonRun locates the longest contiguous run shared by a and b
// via a rolling-array DP over run lengths ending at each (i,j).
// Ties resolve to the run found first (leftmost in a).
func longestCommonRun[T comparable](a, b []T) (startA, startB, length int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	runs := make([]int, len(b))
	for i := range a {
		prevDiag := 0
		for j := range b {
			tmp := runs[j]
			if a[i] == b[j] {
				runs[j] = prevDiag + 1
				if runs[j] > length {
					length = runs[j]
					startA = i + 1 - length
					startB = j + 1 - length
				}
			} else {
				runs[j] = 0
			}
			prevDiag = tmp
		}
	}

	return startA, startB, length
}
