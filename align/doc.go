// Package align provides alignment-based similarity metrics between
// generic sequences: Jaro, Jaro-Winkler and Ratcliff-Obershelp.
//
// 🚀 What is alignment similarity?
//
//	Instead of counting edits, these metrics score how well the two
//	sequences line up — matching elements within a sliding window
//	(Jaro), rewarding shared prefixes (Jaro-Winkler), or summing the
//	lengths of recursively matched common runs (Ratcliff-Obershelp).
//	They shine on short human-entered strings: names, titles, codes.
//
// ✨ Key features:
//
//   - Jaro: matches within a window of max(N,M)/2−1 positions,
//     penalizes out-of-order matches as half transpositions
//   - Jaro-Winkler: boosts the Jaro score by l·p·(1−sim) when the
//     score clears a threshold, l = common prefix length capped at 4
//   - Ratcliff-Obershelp: longest common contiguous run, then recurse
//     on both remainders; similarity = 2·matched/(N+M)
//   - All three already produce distances in [0,1]; Distance and
//     NormalizedDistance coincide
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strdist/align"
//
//	jw, err := align.NewJaroWinkler[rune](
//	  align.WithScaling(0.1),   // default
//	  align.WithThreshold(0.7), // default
//	)
//	d := jw.NormalizedDistance([]rune("martha"), []rune("marhta"))
//
// Edge conventions: two empty sequences are identical (distance 0);
// exactly one empty sequence, or no matching elements at all, yields
// distance 1.
//
// Complexity: Jaro and Jaro-Winkler O(N·M) worst case with O(N+M)
// memory; Ratcliff-Obershelp O(N·M²) worst case with O(M) memory per
// recursion level.
package align
