// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/markovian/markov"
)

// ValidateCmd prints the validated (possibly renormalized) matrix.
type ValidateCmd struct {
	ChainFlags `embed:""`
}

func (c *ValidateCmd) Run(a *app) error {
	chain, def, err := c.build(a)
	if err != nil {
		return err
	}
	if def.Description != "" {
		fmt.Fprintln(a.out, def.Description)
	}

	return a.printer().Matrix("transition matrix", chain.States(), chain.Matrix())
}

// SteadyCmd prints the stationary distribution.
type SteadyCmd struct {
	ChainFlags `embed:""`

	Method string `default:"eigen" enum:"eigen,linear" help:"Algorithm: eigen (eigenvector nearest 1) or linear (LU solve)"`
}

func (c *SteadyCmd) Run(a *app) error {
	method, err := markov.ParseSteadyMethod(c.Method)
	if err != nil {
		return err
	}
	chain, _, err := c.build(a, markov.WithSteadyMethod(method))
	if err != nil {
		return err
	}
	pi, err := chain.SteadyState()
	if err != nil {
		return err
	}

	return a.printer().SteadyState(chain.States(), pi)
}

// ForecastCmd prints P^days.
type ForecastCmd struct {
	ChainFlags `embed:""`

	Days int `required:"" help:"Horizon in steps (>= 1)"`
}

func (c *ForecastCmd) Run(a *app) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be >= 1, got %d", c.Days)
	}
	chain, _, err := c.build(a)
	if err != nil {
		return err
	}
	pk, err := chain.Forecast(c.Days)
	if err != nil {
		return err
	}

	return a.printer().Matrix(fmt.Sprintf("P^%d", c.Days), chain.States(), pk)
}

// ClassifyCmd prints the chain's communicating classes.
type ClassifyCmd struct {
	ChainFlags `embed:""`
}

func (c *ClassifyCmd) Run(a *app) error {
	chain, _, err := c.build(a)
	if err != nil {
		return err
	}

	k, err := chain.Classify()
	if err != nil {
		return err
	}

	return a.printer().Classes(chain.States(), k)
}
