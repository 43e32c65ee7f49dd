// SPDX-License-Identifier: MIT
package markov

import "fmt"

// Frequencies returns the share of positions in history occupied by each of
// the n states (bincount / len). The result sums to 1.
//
// Errors:
//   - ErrEmptyHistory for an empty history.
//   - ErrStateOutOfRange when n ≤ 0 or an entry falls outside [0, n).
func Frequencies(history []int, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrStateOutOfRange, n)
	}
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}

	counts := make([]int, n)
	for t, s := range history {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: history[%d] = %d not in [0, %d)", ErrStateOutOfRange, t, s, n)
		}
		counts[s]++
	}

	total := float64(len(history))
	freq := make([]float64, n)
	for i, k := range counts {
		freq[i] = float64(k) / total
	}

	return freq, nil
}
