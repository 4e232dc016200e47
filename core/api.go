package core

// Compare computes the raw distance between a and b under m.
// It is the generic convenience entry point; the root strdist package
// offers a string-typed twin.
func Compare[T comparable](a, b []T, m Metric[T]) DistanceValue {
	return m.Distance(a, b)
}

// CompareNormalized computes the normalized distance in [0,1] between
// a and b under m.
func CompareNormalized[T comparable](a, b []T, m Metric[T]) float64 {
	return m.NormalizedDistance(a, b)
}
