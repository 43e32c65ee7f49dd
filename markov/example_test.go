// SPDX-License-Identifier: MIT
package markov_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/markovian/markov"
)

func ExampleNew() {
	// Counts are accepted: rows are divided by their sums.
	c, err := markov.New([]string{"up", "down"}, [][]float64{{3, 1}, {2, 2}})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range c.Matrix().ToRows() {
		fmt.Printf("%.2f\n", row)
	}

	_, err = markov.New([]string{"a", "b"}, [][]float64{{0.5, 0.5}, {0, 0}})
	fmt.Println(errors.Is(err, markov.ErrZeroRow))
	// Output:
	// [0.75 0.25]
	// [0.50 0.50]
	// true
}

func ExampleChain_SteadyState() {
	c, _ := markov.New([]string{"sunny", "rainy"}, [][]float64{{0.7, 0.3}, {0.5, 0.5}})
	pi, _ := c.SteadyState()
	fmt.Printf("%.3f %.3f\n", pi[0], pi[1])
	// Output: 0.625 0.375
}

func ExampleChain_Forecast() {
	c, _ := markov.New([]string{"sunny", "rainy"}, [][]float64{{0.7, 0.3}, {0.5, 0.5}})
	p2, _ := c.Forecast(2)
	for _, row := range p2.ToRows() {
		fmt.Printf("%.2f\n", row)
	}
	// Output:
	// [0.64 0.36]
	// [0.60 0.40]
}

func ExampleChain_Classify() {
	c, _ := markov.New([]string{"a", "b"}, [][]float64{{0, 1}, {1, 0}})
	k, _ := c.Classify()
	fmt.Println(k.Irreducible, k.Classes[0].Period, k.Ergodic())
	// Output: true 2 false
}
