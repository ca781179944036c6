package sliding_test

import (
	"fmt"

	"github.com/cwbudde/algo-datautils/stats/sliding"
)

func ExampleAverage() {
	avg, err := sliding.Average([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(avg)

	// Output:
	// [2 3 4]
}

func ExampleCrossCorrelate() {
	a := []float64{1, 1, 1, 1}
	corr, err := sliding.CrossCorrelate(a, a, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(corr)

	// Output:
	// [2 2 2]
}

func ExampleStats() {
	s, err := sliding.NewStats(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Push(v)
	}
	fmt.Printf("n=%d mean=%.1f\n", s.Count(), s.Mean())

	// Output:
	// n=3 mean=4.0
}
