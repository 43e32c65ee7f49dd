// SPDX-License-Identifier: MIT

// Command markovian builds a discrete-time Markov chain from flags or a
// definition file and reports its steady state, k-step forecasts, simulated
// trajectories and structure.
//
//	markovian steady   --states "sunny,rainy" --row "0.7,0.3" --row "0.5,0.5"
//	markovian forecast --file chains.hcl --name weather --days 3
//	markovian simulate --file chains.yaml --initial sunny --steps 200 --runs 8 --seed 1
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/markovian/report"
)

// version is set by ldflags during build
var version = "dev"

// CLI is the root command.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version"`
	LogLevel string           `default:"warn" enum:"debug,info,warn,error" help:"Diagnostic level (${enum})"`
	Verbose  bool             `short:"v" help:"Shorthand for --log-level=debug"`
	NoColor  bool             `help:"Disable colored output"`

	Validate ValidateCmd `cmd:"" help:"Validate (and renormalize) a transition matrix"`
	Steady   SteadyCmd   `cmd:"" help:"Compute the steady-state distribution"`
	Forecast ForecastCmd `cmd:"" help:"Show k-step transition probabilities P^k"`
	Simulate SimulateCmd `cmd:"" help:"Simulate trajectories and compare with the steady state"`
	Classify ClassifyCmd `cmd:"" help:"Show communicating classes, absorbing states and periods"`
}

// app carries the shared dependencies handed to every command's Run.
type app struct {
	ctx    context.Context
	out    io.Writer
	logger *log.Logger
	clock  quartz.Clock
	color  bool
}

// printer returns a report printer on stdout honoring the color setting.
func (a *app) printer(opts ...report.Option) *report.Printer {
	return report.New(a.out, append([]report.Option{report.WithColor(a.color)}, opts...)...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, quartz.NewReal()); err != nil {
		stop()
		os.Exit(1)
	}
}

// run parses args and executes the selected command. Errors are logged to
// stderr before being returned.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, clock quartz.Clock) error {
	var cli CLI
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("markovian"),
		kong.Description("Discrete-time Markov chain toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if exited {
		// --help / --version already printed.
		return nil
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	a, err := cli.newApp(ctx, stdout, stderr, clock)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	if err = kctx.Run(a); err != nil {
		a.logger.Error("command failed", "cmd", kctx.Command(), "err", err)
		return err
	}

	return nil
}

// newApp resolves logging and color settings.
func (c *CLI) newApp(ctx context.Context, stdout, stderr io.Writer, clock quartz.Clock) (*app, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: level, Prefix: "markovian"})

	color := !c.NoColor && termenv.NewOutput(stdout).Profile != termenv.Ascii
	if !color {
		pterm.DisableStyling()
	}

	return &app{
		ctx:    ctx,
		out:    stdout,
		logger: logger,
		clock:  clock,
		color:  color,
	}, nil
}

// errNoChain is returned when neither --file nor --states/--row were given.
var errNoChain = errors.New("no chain given: use --file, or --states with one --row per state")
