// Package core defines the single capability every distance metric in
// strdist satisfies, and the tagged result type bounded computations
// return.
//
// The contract is deliberately tiny:
//
//	type Metric[T comparable] interface {
//	    Distance(a, b []T) DistanceValue
//	    NormalizedDistance(a, b []T) float64
//	}
//
// Concrete algorithms (editdist, align, qgram) and modifiers (modifier)
// all implement Metric, which is what lets a modifier wrap any base
// metric — or another modifier — without knowing its algorithm.
//
// Conventions shared by every implementation:
//
//   - Sequences are borrowed, never mutated, never retained.
//   - NormalizedDistance always lies in [0.0, 1.0]; 0 means identical
//     under the metric, 1 maximally dissimilar.
//   - Comparisons never fail: empty sequences, disjoint sequences and
//     wildly different lengths are all valid inputs. Invalid parameters
//     are rejected once, at metric construction.
//   - Metric values are immutable after construction and safe to share
//     across any number of concurrent callers.
//
// DistanceValue is either Exact(v) — the true raw distance — or
// Exceeded(bound), produced only by edit-distance metrics whose
// configured max-distance bound was reached before the exact value was
// known.
package core
