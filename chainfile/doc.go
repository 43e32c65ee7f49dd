// SPDX-License-Identifier: MIT

// Package chainfile turns user input into the arguments of markov.New.
//
// Two sources are supported:
//
//   - Typed input: a comma-separated state list ("sunny, rainy") and one text
//     row per state ("0.7, 0.3" or "0.7 0.3"). Cells accept decimals and
//     simple fractions ("1/3"). A non-numeric cell fails with ErrInvalidInput
//     naming its row and column, before any chain is built.
//   - Definition files: HCL (.hcl) or YAML (.yaml, .yml), each holding one or
//     more named chains:
//
//	chain "weather" {
//	  description = "two-state weather"
//	  states      = ["sunny", "rainy"]
//	  matrix      = [[0.7, 0.3], [0.5, 0.5]]
//	}
//
//	chains:
//	  - name: weather
//	    states: [sunny, rainy]
//	    matrix: [[0.7, 0.3], [0.5, 0.5]]
//
// Files are only read. Shape and probability checks are left to markov.New so
// that both sources report them identically.
package chainfile
