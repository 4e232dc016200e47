package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/strdist/core"
)

// TestDistanceValue_Exact verifies the exact tag, value access and
// rendering.
func TestDistanceValue_Exact(t *testing.T) {
	d := core.Exact(3)

	assert.False(t, d.IsExceeded())
	assert.Equal(t, 3.0, d.Value())
	assert.Equal(t, "Exact(3)", d.String())
}

// TestDistanceValue_Exceeded verifies the exceeded tag carries the
// bound, not the (unknown) exact distance.
func TestDistanceValue_Exceeded(t *testing.T) {
	d := core.Exceeded(10)

	assert.True(t, d.IsExceeded())
	assert.Equal(t, 10.0, d.Value())
	assert.Equal(t, "Exceeded(10)", d.String())
}

// TestDistanceValue_Comparable verifies values compare by tag and
// value, so tests and callers can use plain equality.
func TestDistanceValue_Comparable(t *testing.T) {
	assert.Equal(t, core.Exact(3), core.Exact(3))
	assert.NotEqual(t, core.Exact(3), core.Exceeded(3))
	assert.NotEqual(t, core.Exact(3), core.Exact(4))
}

// fixedMetric returns a canned result; it exists to test the Compare
// delegation without dragging a real algorithm in.
type fixedMetric struct {
	raw  core.DistanceValue
	norm float64
}

func (f fixedMetric) Distance(_, _ []byte) core.DistanceValue { return f.raw }
func (f fixedMetric) NormalizedDistance(_, _ []byte) float64  { return f.norm }

// TestCompare_Delegates verifies the convenience entry points forward
// to the metric untouched.
func TestCompare_Delegates(t *testing.T) {
	m := fixedMetric{raw: core.Exceeded(7), norm: 0.25}

	assert.Equal(t, core.Exceeded(7), core.Compare([]byte("a"), []byte("b"), m))
	assert.Equal(t, 0.25, core.CompareNormalized([]byte("a"), []byte("b"), m))
}
