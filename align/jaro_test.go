package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strdist/align"
)

// runes is a test shorthand for the rune view of a string.
func runes(s string) []rune { return []rune(s) }

// TestJaro_KnownDistances verifies reference pairs down to 1e-6.
func TestJaro_KnownDistances(t *testing.T) {
	j := align.NewJaro[rune]()

	assert.Equal(t, 0.0, j.NormalizedDistance(runes("foo"), runes("foo")))
	assert.InDelta(t, 0.083333, j.NormalizedDistance(runes("foo"), runes("foo ")), 1e-6)
	assert.InDelta(t, 0.558333, j.NormalizedDistance(runes("elephant"), runes("hippo")), 1e-6)
	assert.InDelta(t, 0.177293,
		j.NormalizedDistance(runes("D N H Enterprises Inc"), runes("D &amp; H Enterprises, Inc.")), 1e-6)
	assert.InDelta(t, 0.055556, j.NormalizedDistance(runes("martha"), runes("marhta")), 1e-6)
}

// TestJaro_EdgeCases verifies the documented conventions: two empty
// sequences are identical, one empty side or zero matches maximally
// dissimilar, single elements all-or-nothing.
func TestJaro_EdgeCases(t *testing.T) {
	j := align.NewJaro[rune]()

	assert.Equal(t, 0.0, j.NormalizedDistance(nil, nil))
	assert.Equal(t, 1.0, j.NormalizedDistance(nil, runes("abc")))
	assert.Equal(t, 1.0, j.NormalizedDistance(runes("abc"), nil))
	assert.Equal(t, 1.0, j.NormalizedDistance(runes("abc"), runes("xyz")))
	assert.Equal(t, 0.0, j.NormalizedDistance(runes("a"), runes("a")))
	assert.Equal(t, 1.0, j.NormalizedDistance(runes("a"), runes("b")))
}

// TestJaro_Symmetry verifies distance(a,b) == distance(b,a).
func TestJaro_Symmetry(t *testing.T) {
	j := align.NewJaro[rune]()

	pairs := [][2]string{
		{"elephant", "hippo"},
		{"martha", "marhta"},
		{"", "abc"},
	}
	for _, p := range pairs {
		assert.Equal(t,
			j.NormalizedDistance(runes(p[0]), runes(p[1])),
			j.NormalizedDistance(runes(p[1]), runes(p[0])),
			"distance must be symmetric for %q / %q", p[0], p[1])
	}
}

// TestJaro_GenericElements verifies the metric over integer sequences.
func TestJaro_GenericElements(t *testing.T) {
	j := align.NewJaro[int]()

	assert.Equal(t, 0.0, j.NormalizedDistance([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.Equal(t, 1.0, j.NormalizedDistance([]int{1, 2, 3}, []int{7, 8, 9}))
}

// TestJaroWinkler_PrefixBoost verifies the classic reference pairs.
func TestJaroWinkler_PrefixBoost(t *testing.T) {
	jw, err := align.NewJaroWinkler[rune]()
	require.NoError(t, err)

	assert.InDelta(t, 0.038889, jw.NormalizedDistance(runes("martha"), runes("marhta")), 1e-6)
	assert.InDelta(t, 0.186667, jw.NormalizedDistance(runes("dixon"), runes("dicksonx")), 1e-6)
}

// TestJaroWinkler_BelowThreshold verifies that a pair under the boost
// threshold scores exactly like plain Jaro.
func TestJaroWinkler_BelowThreshold(t *testing.T) {
	j := align.NewJaro[rune]()
	jw, err := align.NewJaroWinkler[rune]()
	require.NoError(t, err)

	// elephant/hippo: jaro similarity ≈ 0.44, well under 0.7
	a, b := runes("elephant"), runes("hippo")
	assert.Equal(t, j.NormalizedDistance(a, b), jw.NormalizedDistance(a, b))
}

// TestJaroWinkler_Identity verifies the boosted score clamps at 1.
func TestJaroWinkler_Identity(t *testing.T) {
	jw, err := align.NewJaroWinkler[rune]()
	require.NoError(t, err)

	assert.Equal(t, 0.0, jw.NormalizedDistance(runes("prefix"), runes("prefix")))
	assert.Equal(t, 0.0, jw.NormalizedDistance(nil, nil))
}

// TestJaroWinkler_ConfigErrors verifies out-of-range parameters fail at
// construction, never at comparison.
func TestJaroWinkler_ConfigErrors(t *testing.T) {
	_, err := align.NewJaroWinkler[rune](align.WithScaling(-0.1))
	assert.ErrorIs(t, err, align.ErrScaling)

	// scaling×4 would push a perfect-prefix score past 1
	_, err = align.NewJaroWinkler[rune](align.WithScaling(0.3))
	assert.ErrorIs(t, err, align.ErrScaling)

	_, err = align.NewJaroWinkler[rune](align.WithThreshold(1.5))
	assert.ErrorIs(t, err, align.ErrThreshold)

	_, err = align.NewJaroWinkler[rune](align.WithThreshold(-0.5))
	assert.ErrorIs(t, err, align.ErrThreshold)
}

// TestJaroWinkler_CustomOptions verifies a raised threshold disables
// the boost for a pair the default config would boost.
func TestJaroWinkler_CustomOptions(t *testing.T) {
	j := align.NewJaro[rune]()
	strict, err := align.NewJaroWinkler[rune](align.WithThreshold(0.99))
	require.NoError(t, err)

	a, b := runes("martha"), runes("marhta")
	assert.Equal(t, j.NormalizedDistance(a, b), strict.NormalizedDistance(a, b))
}
