// SPDX-License-Identifier: MIT
// Package markov: functional options for chain construction and simulation.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (nil logger, negative tolerance, nil RNG). Operations never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package markov

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is the allowed |rowSum − 1| before rows are renormalized.
	DefaultTolerance = 1e-10

	// DefaultSteadyMethod is the stationary-distribution algorithm used by SteadyState.
	DefaultSteadyMethod = EigenNearestOne
)

// SteadyMethod selects the stationary-distribution algorithm.
type SteadyMethod int

const (
	// EigenNearestOne takes the eigenvector of Pᵗ whose eigenvalue is nearest to 1.
	EigenNearestOne SteadyMethod = iota

	// LinearSolve solves (Pᵗ − I)·π = 0 together with Σπ = 1.
	LinearSolve
)

// String returns the CLI name of the method.
func (m SteadyMethod) String() string {
	switch m {
	case EigenNearestOne:
		return "eigen"
	case LinearSolve:
		return "linear"
	default:
		return fmt.Sprintf("SteadyMethod(%d)", int(m))
	}
}

// ParseSteadyMethod maps "eigen" / "linear" (case-insensitive) to a SteadyMethod.
func ParseSteadyMethod(s string) (SteadyMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eigen", "":
		return EigenNearestOne, nil
	case "linear":
		return LinearSolve, nil
	default:
		return 0, fmt.Errorf("markov: unknown steady-state method %q", s)
	}
}

// Option customizes a Chain at construction time.
type Option func(*chainConfig)

type chainConfig struct {
	logger *log.Logger
	tol    float64
	method SteadyMethod
}

func newChainConfig(opts []Option) chainConfig {
	cfg := chainConfig{
		tol:    DefaultTolerance,
		method: DefaultSteadyMethod,
	}
	for _, set := range opts {
		set(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	return cfg
}

// WithLogger routes construction and simulation diagnostics to l.
// Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("markov: WithLogger(nil)")
	}
	return func(c *chainConfig) { c.logger = l }
}

// WithTolerance sets the row-sum tolerance. Panics if tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("markov: WithTolerance: tol must be finite and non-negative")
	}
	return func(c *chainConfig) { c.tol = tol }
}

// WithSteadyMethod selects the algorithm used by SteadyState. Panics on unknown values.
func WithSteadyMethod(m SteadyMethod) Option {
	if m != EigenNearestOne && m != LinearSolve {
		panic(fmt.Sprintf("markov: WithSteadyMethod(%d)", int(m)))
	}
	return func(c *chainConfig) { c.method = m }
}

// SimulateOption customizes a single Simulate call.
type SimulateOption func(*simConfig)

type simConfig struct {
	rng *rand.Rand // nil → process-global math/rand source
}

// uniform returns the [0,1) draw function for this call.
func (c simConfig) uniform() func() float64 {
	if c.rng != nil {
		return c.rng.Float64
	}

	return rand.Float64
}

// WithRand draws from r. A *rand.Rand is not goroutine safe; do not share one
// across concurrent Simulate calls. Panics on nil.
func WithRand(r *rand.Rand) SimulateOption {
	if r == nil {
		panic("markov: WithRand(nil)")
	}
	return func(c *simConfig) { c.rng = r }
}

// WithSeed draws from a fresh source seeded with seed (reproducible runs).
func WithSeed(seed int64) SimulateOption {
	return func(c *simConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
