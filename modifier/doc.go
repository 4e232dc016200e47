// Package modifier wraps any base metric — any core.Metric, including
// another modifier — and redefines the comparison before delegating:
// prefix weighting, substring alignment, word-order invariance.
//
// 🚀 What is a modifier?
//
//	A metric built from a metric. A modifier never reimplements the
//	base algorithm; it depends only on the capability "compare two
//	sequences, return a normalized distance", so any combination
//	composes: Winkler over Levenshtein, Partial over Sorensen-Dice,
//	TokenSet over Ratcliff-Obershelp, Winkler over TokenSort over …
//
// ✨ The four modifiers:
//
//   - Winkler: generalizes the Jaro-Winkler prefix boost to any base —
//     converts the base distance to a similarity, boosts it by
//     l·p·(1−sim) above a threshold, converts back
//   - Partial: best window alignment — slides the shorter sequence
//     over the longer and keeps the minimum base distance
//   - TokenSort: sorts whitespace-delimited tokens on both sides
//     before delegating, neutralizing word order
//   - TokenSet: compares shared tokens against each side's token
//     surplus and keeps the minimum of the three pairings
//
// TokenSort and TokenSet tokenize on whitespace and therefore operate
// on rune sequences (core.Metric[rune]); Winkler and Partial stay fully
// generic.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strdist/modifier"
//
//	lev, _ := editdist.NewLevenshtein[rune]()
//	p, err := modifier.NewPartial[rune](lev)
//	d := p.NormalizedDistance([]rune("abcd"), []rune("XXabcdXX")) // 0
//
// Modifiers live entirely in normalized space: Distance returns Exact
// of the normalized value and never Exceeded, regardless of the base.
package modifier
