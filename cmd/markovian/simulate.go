// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/markovian/markov"
	"github.com/katalvlaran/markovian/report"
)

// SimulateCmd runs one or more seeded replicas and compares their pooled
// occupancy with the steady state.
type SimulateCmd struct {
	ChainFlags `embed:""`

	Initial string `required:"" help:"Starting state label"`
	Steps   int    `default:"100" help:"Transitions per run"`
	Runs    int    `default:"1" help:"Independent replicas (run i uses seed+i)"`
	Seed    *int64 `help:"Base RNG seed (default: current time)"`
	Export  string `help:"Write the runs to this .json/.yaml file"`
	Width   int    `default:"72" help:"Steps drawn in the trajectory strip"`
}

func (c *SimulateCmd) Run(a *app) error {
	if c.Steps < 1 {
		return fmt.Errorf("--steps must be >= 1, got %d", c.Steps)
	}
	if c.Runs < 1 {
		return fmt.Errorf("--runs must be >= 1, got %d", c.Runs)
	}
	if c.Width < 1 {
		return fmt.Errorf("--width must be >= 1, got %d", c.Width)
	}
	chain, def, err := c.build(a)
	if err != nil {
		return err
	}
	initial, err := chain.Index(c.Initial)
	if err != nil {
		return err
	}

	base := a.clock.Now().UnixNano()
	if c.Seed != nil {
		base = *c.Seed
	}
	seeds := make([]int64, c.Runs)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	start := a.clock.Now()
	histories, err := runReplicas(a.ctx, chain, initial, c.Steps, seeds)
	if err != nil {
		return err
	}
	elapsed := a.clock.Since(start)

	var pooled []int
	for _, h := range histories {
		pooled = append(pooled, h...)
	}
	simulated, err := markov.Frequencies(pooled, chain.Len())
	if err != nil {
		return err
	}
	theoretical, err := chain.SteadyState()
	if err != nil {
		// Reducible chains may have no unique answer; the simulation still stands.
		a.logger.Warn("steady state unavailable", "err", err)
		theoretical = nil
	}

	states := chain.States()
	p := a.printer(report.WithTrajectoryWidth(c.Width))
	if err = p.Trajectory(states, histories[0]); err != nil {
		return err
	}
	if theoretical != nil {
		if err = p.Histogram(states, theoretical, simulated); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.out, "%d run(s) x %d steps in %v\n", c.Runs, c.Steps, elapsed.Truncate(time.Millisecond))

	if c.Export == "" {
		return nil
	}
	r := report.SimulationReport{
		Chain:       def.Name,
		States:      states,
		Initial:     c.Initial,
		Steps:       c.Steps,
		Theoretical: theoretical,
		Simulated:   simulated,
		Runs:        make([]report.Run, len(histories)),
	}
	for i, h := range histories {
		freq, err := markov.Frequencies(h, chain.Len())
		if err != nil {
			return err
		}
		labels := make([]string, len(h))
		for t, s := range h {
			labels[t] = states[s]
		}
		r.Runs[i] = report.Run{Seed: seeds[i], History: labels, Frequencies: freq}
	}
	if err = report.Export(c.Export, r); err != nil {
		return err
	}
	a.logger.Info("report written", "path", c.Export, "runs", len(r.Runs))

	return nil
}

// runReplicas simulates one trajectory per seed concurrently. Each replica
// owns its source, so results depend only on the seeds.
func runReplicas(ctx context.Context, chain *markov.Chain, initial, steps int, seeds []int64) ([][]int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	out := make([][]int, len(seeds))
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := chain.Simulate(initial, steps, markov.WithSeed(seed))
			if err != nil {
				return err
			}
			out[i] = h

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
