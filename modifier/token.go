package modifier

import (
	"slices"
	"strings"

	"github.com/katalvlaran/strdist/core"
)

// TokenSort neutralizes word order: both sides are split into
// whitespace-delimited tokens, the tokens sorted lexicographically and
// rejoined with single spaces, and the base metric compares the
// reconstructed sequences.
//
// Tokenization needs a notion of whitespace, so TokenSort operates on
// rune sequences. Immutable after construction; safe for concurrent use.
type TokenSort struct {
	base core.Metric[rune]
}

// NewTokenSort wraps base with token sorting.
// Returns ErrNilMetric if base is nil.
func NewTokenSort(base core.Metric[rune]) (*TokenSort, error) {
	if base == nil {
		return nil, ErrNilMetric
	}

	return &TokenSort{base: base}, nil
}

// Distance returns Exact of the normalized distance; modifiers live in
// normalized space.
func (ts *TokenSort) Distance(a, b []rune) core.DistanceValue {
	return core.Exact(ts.NormalizedDistance(a, b))
}

// NormalizedDistance delegates the base metric to the two token-sorted
// reconstructions.
func (ts *TokenSort) NormalizedDistance(a, b []rune) float64 {
	return ts.base.NormalizedDistance(sortTokens(a), sortTokens(b))
}

// sortTokens splits s on whitespace, sorts the tokens and rejoins them
// with single spaces.
func sortTokens(s []rune) []rune {
	tokens := strings.Fields(string(s))
	slices.Sort(tokens)

	return []rune(strings.Join(tokens, " "))
}

// TokenSet adjusts for both word order and word surplus: with inter
// the sorted tokens common to both sides and diffA/diffB the sorted
// tokens unique to each side, the result is the minimum base distance
// among the pairings
//
//	(inter, inter+diffA), (inter, inter+diffB), (inter+diffA, inter+diffB).
//
// Duplicate tokens are removed before pairing. Taking the plain
// minimum of the three pairings is a deliberate policy choice; other
// fuzzy matchers weight the pairings instead.
//
// Immutable after construction; safe for concurrent use.
type TokenSet struct {
	base core.Metric[rune]
}

// NewTokenSet wraps base with token-set comparison.
// Returns ErrNilMetric if base is nil.
func NewTokenSet(base core.Metric[rune]) (*TokenSet, error) {
	if base == nil {
		return nil, ErrNilMetric
	}

	return &TokenSet{base: base}, nil
}

// Distance returns Exact of the normalized distance; modifiers live in
// normalized space.
func (ts *TokenSet) Distance(a, b []rune) core.DistanceValue {
	return core.Exact(ts.NormalizedDistance(a, b))
}

// NormalizedDistance returns the minimum base distance among the three
// intersection/surplus pairings.
func (ts *TokenSet) NormalizedDistance(a, b []rune) float64 {
	ta, tb := tokenSet(a), tokenSet(b)
	inter, diffA, diffB := splitTokens(ta, tb)

	t0 := strings.Join(inter, " ")
	t1 := joinParts(t0, strings.Join(diffA, " "))
	t2 := joinParts(t0, strings.Join(diffB, " "))

	d01 := ts.base.NormalizedDistance([]rune(t0), []rune(t1))
	d02 := ts.base.NormalizedDistance([]rune(t0), []rune(t2))
	d12 := ts.base.NormalizedDistance([]rune(t1), []rune(t2))

	return min(d01, d02, d12)
}

// tokenSet splits s on whitespace and returns its distinct tokens,
// sorted.
func tokenSet(s []rune) []string {
	tokens := strings.Fields(string(s))
	slices.Sort(tokens)

	return slices.Compact(tokens)
}

// splitTokens partitions two sorted distinct token lists into the
// shared tokens and each side's surplus, via one merge walk.
func splitTokens(a, b []string) (inter, diffA, diffB []string) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			inter = append(inter, a[i])
			i++
			j++
		case a[i] < b[j]:
			diffA = append(diffA, a[i])
			i++
		default:
			diffB = append(diffB, b[j])
			j++
		}
	}
	diffA = append(diffA, a[i:]...)
	diffB = append(diffB, b[j:]...)

	return inter, diffA, diffB
}

// joinParts glues the intersection and a surplus with a single space,
// dropping the separator when either part is empty.
func joinParts(head, tail string) string {
	switch {
	case head == "":
		return tail
	case tail == "":
		return head
	default:
		return head + " " + tail
	}
}
