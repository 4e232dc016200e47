package core

import "fmt"

// Metric is the uniform comparison capability: compute a raw distance
// and a normalized distance in [0,1] between two sequences of T.
//
// Implementations must be pure and must not mutate or retain a or b.
type Metric[T comparable] interface {
	// Distance returns the raw distance between a and b. Only
	// edit-distance metrics configured with a max-distance bound may
	// return an Exceeded value; every other metric returns Exact.
	Distance(a, b []T) DistanceValue

	// NormalizedDistance maps the raw distance onto [0,1]:
	// 0 = identical under this metric, 1 = maximally dissimilar.
	NormalizedDistance(a, b []T) float64
}

// DistanceValue is the tagged outcome of a (possibly bounded) distance
// computation: either the exact raw distance, or the statement that the
// true distance is at least the configured bound.
//
// The value is carried as float64 so one type serves both the
// integer-valued raw outputs (edit distances, q-gram L1) and the
// real-valued ones (alignment similarity, set metrics); edit distances
// always hold integral values.
type DistanceValue struct {
	value    float64
	exceeded bool
}

// Exact wraps the true raw distance v.
func Exact(v float64) DistanceValue {
	return DistanceValue{value: v}
}

// Exceeded states that the true distance is at least bound; the exact
// value was not computed.
func Exceeded(bound float64) DistanceValue {
	return DistanceValue{value: bound, exceeded: true}
}

// Value returns the exact distance for an Exact result, or the bound
// for an Exceeded result.
func (d DistanceValue) Value() float64 { return d.value }

// IsExceeded reports whether the computation stopped at its bound
// instead of producing the exact distance.
func (d DistanceValue) IsExceeded() bool { return d.exceeded }

// String renders the value as Exact(v) or Exceeded(v) for logs and
// test failure messages.
func (d DistanceValue) String() string {
	if d.exceeded {
		return fmt.Sprintf("Exceeded(%g)", d.value)
	}

	return fmt.Sprintf("Exact(%g)", d.value)
}
