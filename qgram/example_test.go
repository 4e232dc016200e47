package qgram_test

import (
	"fmt"

	"github.com/katalvlaran/strdist/qgram"
)

// ExampleNewSorensenDice compares German and English "night" over
// bigram profiles: one shared gram out of four per side.
func ExampleNewSorensenDice() {
	dice, _ := qgram.NewSorensenDice[rune](2)

	fmt.Printf("%.2f\n", dice.NormalizedDistance([]rune("nacht"), []rune("night")))
	// Output:
	// 0.75
}

// ExampleNewQGram shows the raw L1 profile distance next to its
// normalized form.
func ExampleNewQGram() {
	qg, _ := qgram.NewQGram[rune](2)

	a, b := []rune("nacht"), []rune("night")
	fmt.Println(qg.Distance(a, b))
	fmt.Printf("%.2f\n", qg.NormalizedDistance(a, b))
	// Output:
	// Exact(6)
	// 0.75
}

// ExampleNewJaccard runs a q-gram metric over integer sequences — any
// ordered element type works.
func ExampleNewJaccard() {
	jac, _ := qgram.NewJaccard[int](2)

	fmt.Printf("%.2f\n", jac.NormalizedDistance([]int{1, 2, 3, 4}, []int{2, 3, 4, 5}))
	// Output:
	// 0.50
}
