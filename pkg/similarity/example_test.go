package similarity_test

import (
	"fmt"

	"github.com/dmitrymomot/textkit/pkg/similarity"
)

func ExampleDistance() {
	fmt.Println(similarity.Distance("kitten", "sitting"))
	// Output: 3
}

func ExampleScore() {
	fmt.Println(similarity.Score("hello", "hallo"))
	fmt.Println(similarity.Score("", ""))
	fmt.Println(similarity.Score("abc", ""))
	// Output:
	// 0.8
	// 1
	// 0
}

func ExampleClosest() {
	m, ok := similarity.Closest("colr", []string{"cool", "colour", "color"},
		similarity.WithThreshold(0.5),
	)
	fmt.Println(m.Value, m.Distance, ok)
	// Output: color 1 true
}
