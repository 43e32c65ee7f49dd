// SPDX-License-Identifier: MIT

// Package markov implements discrete-time, finite-state Markov chains over a
// row-stochastic transition matrix.
//
// A Chain pairs an ordered list of state labels with an n×n matrix P whose row
// i holds the probabilities of moving from state i to every state in one step.
// The chain is validated (and, when rows do not sum to 1, renormalized) once at
// construction and is immutable afterwards, so a single *Chain may be shared by
// any number of goroutines.
//
// Operations:
//
//   - New(states, rows, opts...)        validate + normalize, emits diagnostics.
//   - (*Chain).SteadyState()            stationary distribution π with π·P = π.
//   - (*Chain).Simulate(i, steps, ...)  random trajectory of steps+1 indices.
//   - (*Chain).Forecast(days)           P^days (k-step transition probabilities).
//   - (*Chain).Distribution(π0, steps)  π0·P^steps.
//   - Frequencies(history, n)           empirical occupancy of a trajectory.
//   - (*Chain).Graph()                  transition graph (core.Graph), edge i → j iff P[i][j] > 0.
//   - (*Chain).Classify()               communicating classes (dfs.StronglyConnected),
//     closed classes, absorbing states and periods (bfs depths).
//
// Steady-state methods:
//
//   - EigenNearestOne (default): eigendecomposition of Pᵗ (gonum); the
//     eigenvector whose eigenvalue is nearest to 1 is made real, non-negative
//     and rescaled to sum 1. With more than one closed class several
//     eigenvalues equal 1 and the solver's ordering decides which one is
//     returned.
//   - LinearSolve: (Pᵗ − I)·π = 0 with one equation replaced by Σπ = 1, solved
//     by pivoted LU. A chain with a single closed class (transient states
//     allowed) solves normally; with more than one closed class the system is
//     singular and it fails with matrix.ErrSingular instead of silently picking
//     one stationary vector.
//
// Errors:
//
//   - *ShapeError (errors.Is ErrShape): empty, ragged, non-square matrix, or a
//     size that differs from the number of states.
//   - *RangeError (errors.Is ErrRange): NaN/Inf cells, entries outside [0,1]
//     after normalization, and rows that sum to zero (also ErrZeroRow).
//   - ErrInvalidState, ErrUnknownState, ErrStateOutOfRange, ErrNegativeSteps,
//     ErrNegativeDays, ErrInvalidDistribution, ErrEmptyHistory, ErrEigenFailed.
//
// Diagnostics (row renormalization, validation success) go to the
// *log.Logger passed with WithLogger; the default logger discards them.
package markov
