package strdist

import "github.com/katalvlaran/strdist/core"

// Compare computes the raw distance between two strings under m,
// comparing codepoint by codepoint. It is shorthand for
// core.Compare([]rune(a), []rune(b), m).
func Compare(a, b string, m core.Metric[rune]) core.DistanceValue {
	return core.Compare([]rune(a), []rune(b), m)
}

// CompareNormalized computes the normalized distance in [0,1] between
// two strings under m; 0 means identical under m, 1 maximally dissimilar.
func CompareNormalized(a, b string, m core.Metric[rune]) float64 {
	return core.CompareNormalized([]rune(a), []rune(b), m)
}
