package align_test

import (
	"fmt"

	"github.com/katalvlaran/strdist/align"
)

// ExampleNewJaro compares two names that differ by one trailing space
// worth of alignment.
func ExampleNewJaro() {
	j := align.NewJaro[rune]()

	fmt.Printf("%.6f\n", j.NormalizedDistance([]rune("elephant"), []rune("hippo")))
	// Output:
	// 0.558333
}

// ExampleNewJaroWinkler shows the prefix boost: martha/marhta share
// the prefix "mar", pulling the distance below plain Jaro.
func ExampleNewJaroWinkler() {
	j := align.NewJaro[rune]()
	jw, _ := align.NewJaroWinkler[rune]()

	a, b := []rune("martha"), []rune("marhta")
	fmt.Printf("jaro:         %.6f\n", j.NormalizedDistance(a, b))
	fmt.Printf("jaro-winkler: %.6f\n", jw.NormalizedDistance(a, b))
	// Output:
	// jaro:         0.055556
	// jaro-winkler: 0.038889
}

// ExampleNewRatcliffObershelp scores two spellings of the same word by
// their recursively matched common runs.
func ExampleNewRatcliffObershelp() {
	r := align.NewRatcliffObershelp[rune]()

	fmt.Printf("%.6f\n", r.NormalizedDistance([]rune("mathematics"), []rune("matematica")))
	// Output:
	// 0.142857
}
