// Package editdist computes edit distances between generic sequences:
// classic Levenshtein and the unrestricted Damerau-Levenshtein variant,
// both with an optional max-distance bound for early exit.
//
// 🚀 What is an edit distance?
//
//	The minimum number of unit-cost edits — insert one element, delete
//	one element, substitute one element (Damerau-Levenshtein adds:
//	transpose two adjacent elements) — turning one sequence into the
//	other. It is the workhorse of spell checking, fuzzy search and
//	record deduplication.
//
// ✨ Key features:
//
//   - Generic over any comparable element type — runes, bytes, ints, …
//   - Shared prefix/suffix trimming before the DP table is touched
//   - Levenshtein: two rolling rows, O(min(N,M)) memory
//   - Damerau-Levenshtein: unrestricted transpositions via per-element
//     last-occurrence tracking ("CA" → "ABC" costs 2, not 3)
//   - WithMaxDistance(k): abort as soon as the distance provably
//     reaches k and report Exceeded(k) instead of the exact value
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strdist/editdist"
//
//	lev, err := editdist.NewLevenshtein[rune](editdist.WithMaxDistance(10))
//	if err != nil {
//	  // ErrNegativeMaxDistance
//	}
//	d := lev.Distance([]rune("kitten"), []rune("sitting")) // Exact(3)
//	n := lev.NormalizedDistance(...)                       // d / max(len)
//
// Bound semantics: with an active bound k, Distance returns Exceeded(k)
// exactly when the true distance is ≥ k, and Exact(d) with d < k
// otherwise. Normalization under Exceeded(k) yields k/max(len1,len2),
// a lower-bound estimate; use an unbounded metric for the exact ratio.
//
// Complexity:
//
//   - Levenshtein: O(N·M) time, O(min(N,M)) memory
//   - Damerau-Levenshtein: O(N·M) time and memory (the transposition
//     lookup may reach arbitrarily far back, so full rows are kept)
//   - A bound of k cuts work roughly to the cells within k of the
//     diagonal before the row minimum reaches k.
package editdist
