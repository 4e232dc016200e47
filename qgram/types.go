// Package qgram provides the shared profile tally and error
// definitions for the q-gram metric family.
package qgram

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// DefaultQ is the fragment length to reach for when nothing in the
// problem suggests another: bigrams.
const DefaultQ = 2

// ErrFragmentLength is returned by every constructor in this package
// when the fragment length q is zero or negative.
var ErrFragmentLength = errors.New("qgram: fragment length q must be positive")

// validateQ rejects non-positive fragment lengths at construction time.
func validateQ(q int) error {
	if q < 1 {
		return fmt.Errorf("%w: %d", ErrFragmentLength, q)
	}

	return nil
}

// tally aggregates every statistic the derived metrics need from one
// pass over the two q-gram profiles.
type tally struct {
	sizeA, sizeB int // |A|, |B|: total gram counts per side
	intersection int // Σ min(countA, countB) over shared grams
	l1           int // Σ |countA − countB| over all grams
	dot          int // Σ countA·countB over shared grams
	normA, normB int // Σ countA², Σ countB²
}

// union is |A| + |B| − intersection.
func (t tally) union() int { return t.sizeA + t.sizeB - t.intersection }

// grams slides a window of length q over s, one element at a time.
// A non-empty sequence shorter than q yields the whole sequence as a
// single gram; an empty sequence yields no grams.
func grams[T cmp.Ordered](s []T, q int) [][]T {
	if len(s) == 0 {
		return nil
	}
	if len(s) < q {
		return [][]T{s}
	}

	out := make([][]T, 0, len(s)-q+1)
	for i := 0; i+q <= len(s); i++ {
		out = append(out, s[i:i+q])
	}

	return out
}

// newTally builds both gram profiles, sorts them lexicographically and
// merge-counts the sorted lists into one tally.
func newTally[T cmp.Ordered](a, b []T, q int) tally {
	ga, gb := grams(a, q), grams(b, q)
	slices.SortFunc(ga, slices.Compare[[]T])
	slices.SortFunc(gb, slices.Compare[[]T])

	t := tally{sizeA: len(ga), sizeB: len(gb)}

	i, j := 0, 0
	for i < len(ga) || j < len(gb) {
		var c int
		switch {
		case i == len(ga):
			c = 1
		case j == len(gb):
			c = -1
		default:
			c = slices.Compare(ga[i], gb[j])
		}

		switch {
		case c < 0: // gram only in A
			ca := runLen(ga, i)
			t.l1 += ca
			t.normA += ca * ca
			i += ca
		case c > 0: // gram only in B
			cb := runLen(gb, j)
			t.l1 += cb
			t.normB += cb * cb
			j += cb
		default: // shared gram
			ca, cb := runLen(ga, i), runLen(gb, j)
			t.intersection += min(ca, cb)
			t.l1 += max(ca, cb) - min(ca, cb)
			t.dot += ca * cb
			t.normA += ca * ca
			t.normB += cb * cb
			i += ca
			j += cb
		}
	}

	return t
}

// runLen counts how often the gram at position i repeats in the sorted
// gram list gs — its multiset count.
func runLen[T cmp.Ordered](gs [][]T, i int) int {
	n := 1
	for i+n < len(gs) && slices.Compare(gs[i], gs[i+n]) == 0 {
		n++
	}

	return n
}
