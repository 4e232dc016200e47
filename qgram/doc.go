// Package qgram derives distance metrics from q-gram multisets: slide
// a window of length q over each sequence, count how often each
// distinct gram occurs, and compare the two count profiles.
//
// 🚀 What is a q-gram?
//
//	A contiguous length-q window of a sequence ("nacht" with q=2 gives
//	na, ac, ch, ht). Profile comparison is order-insensitive beyond the
//	window, which makes these metrics fast and robust for fuzzy
//	matching over longer text.
//
// ✨ Derived metrics (all over one shared profile tally):
//
//   - QGram: L1 distance between the count profiles, Σ|countA−countB|
//   - Cosine: 1 − dot(A,B)/(‖A‖₂·‖B‖₂)
//   - Jaccard: 1 − intersection/union
//   - SorensenDice: 1 − 2·intersection/(|A|+|B|)
//   - Overlap: 1 − intersection/min(|A|,|B|)
//
// Convention for short input: a non-empty sequence shorter than q
// contributes the whole sequence as a single gram; an empty sequence
// contributes an empty multiset. Degenerate denominators (empty
// profiles) yield distance 0.
//
// Elements must be ordered (cmp.Ordered): profiles are built by
// sorting the grams lexicographically and merge-counting the two
// sorted lists, so no hashing of composite keys is needed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strdist/qgram"
//
//	dice, err := qgram.NewSorensenDice[rune](2)
//	if err != nil {
//	  // ErrFragmentLength: q must be ≥ 1
//	}
//	d := dice.NormalizedDistance([]rune("nacht"), []rune("night")) // 0.75
//
// Complexity: O((N+M)·q·log(N+M)) time per comparison for the sort,
// O((N+M)·q) memory for the gram tables.
package qgram
