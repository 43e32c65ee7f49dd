// SPDX-License-Identifier: MIT
package main

import (
	"github.com/katalvlaran/markovian/chainfile"
	"github.com/katalvlaran/markovian/markov"
)

// ChainFlags selects the chain a command works on.
type ChainFlags struct {
	States    string   `short:"s" help:"Comma-separated state labels, e.g. \"sunny,rainy\""`
	Row       []string `short:"r" sep:"none" help:"Matrix row for the next state, e.g. --row \"0.7,0.3\" (repeat per state)"`
	File      string   `short:"f" help:"Chain definition file (.hcl, .yaml, .yml)"`
	Name      string   `short:"n" help:"Chain name inside --file (default: the first one)"`
	Tolerance float64  `default:"1e-10" help:"Allowed |row sum - 1| before rows are renormalized"`
}

// definition resolves the flags into a chain definition without validating it.
func (f ChainFlags) definition() (chainfile.Definition, error) {
	if f.File != "" {
		defs, err := chainfile.LoadFile(f.File)
		if err != nil {
			return chainfile.Definition{}, err
		}

		return chainfile.Select(defs, f.Name)
	}
	if f.States == "" && len(f.Row) == 0 {
		return chainfile.Definition{}, errNoChain
	}

	states, err := chainfile.ParseStates(f.States)
	if err != nil {
		return chainfile.Definition{}, err
	}
	rows, err := chainfile.ParseRows(f.Row)
	if err != nil {
		return chainfile.Definition{}, err
	}

	return chainfile.Definition{Name: "flags", States: states, Matrix: rows}, nil
}

// build loads and validates the chain, routing diagnostics to the app logger.
func (f ChainFlags) build(a *app, opts ...markov.Option) (*markov.Chain, chainfile.Definition, error) {
	def, err := f.definition()
	if err != nil {
		return nil, def, err
	}
	a.logger.Debug("building chain", "name", def.Name, "states", len(def.States))

	base := []markov.Option{
		markov.WithLogger(a.logger.With("chain", def.Name)),
		markov.WithTolerance(f.Tolerance),
	}
	c, err := def.Chain(append(base, opts...)...)
	if err != nil {
		return nil, def, err
	}

	return c, def, nil
}
