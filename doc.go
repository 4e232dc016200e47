// Package strdist measures how far apart two sequences are — character
// strings first of all, but any slice of comparable elements works.
//
// 🚀 What is strdist?
//
//	A pure-Go library of interchangeable distance metrics and composable
//	modifiers:
//		• Edit distances: Levenshtein, Damerau-Levenshtein (bounded early exit)
//		• Alignment similarity: Jaro, Jaro-Winkler, Ratcliff-Obershelp
//		• Q-gram set algebra: QGram, Cosine, Jaccard, Sorensen-Dice, Overlap
//		• Modifiers: Winkler, Partial, TokenSort, TokenSet — wrap any metric
//
// ✨ Why choose strdist?
//
//   - One capability — every metric and modifier satisfies core.Metric,
//     so fuzzy matching, deduplication and ranking code stays generic
//   - Normalized scores — every metric maps onto [0,1], 0 means identical
//   - Immutable descriptors — construct once, share freely across goroutines
//   - Pure Go — no cgo, no hidden deps, no I/O
//
// Everything is organized under five subpackages:
//
//	core/     — Metric capability, DistanceValue, Compare entry points
//	editdist/ — Levenshtein & Damerau-Levenshtein with max-distance bounds
//	align/    — Jaro, Jaro-Winkler, Ratcliff-Obershelp
//	qgram/    — q-gram multiset construction + derived set metrics
//	modifier/ — Winkler, Partial, TokenSort, TokenSet wrappers
//
// Quick example:
//
//	lev, _ := editdist.NewLevenshtein[rune]()
//	strdist.Compare("kitten", "sitting", lev) // Exact(3)
//
// Dive into each package's doc.go for algorithms, conventions and
// complexity notes.
package strdist
