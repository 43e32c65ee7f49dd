// SPDX-License-Identifier: MIT
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/markovian/markov"
	"github.com/katalvlaran/markovian/matrix"
)

// DefaultTrajectoryWidth caps the number of steps drawn by Trajectory.
const DefaultTrajectoryWidth = 72

// ErrLengthMismatch indicates vectors whose length differs from the state count.
var ErrLengthMismatch = errors.New("report: length does not match state count")

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	stateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	probStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// Printer renders reports to w.
type Printer struct {
	w         io.Writer
	color     bool
	precision int
	width     int
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor toggles lipgloss styling (on by default).
func WithColor(on bool) Option {
	return func(p *Printer) { p.color = on }
}

// WithPrecision sets the number of decimals for probabilities (default 4).
// Panics if digits is negative.
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic("report: WithPrecision(digits<0)")
	}
	return func(p *Printer) { p.precision = digits }
}

// WithTrajectoryWidth caps the steps drawn by Trajectory. Panics if n < 1.
func WithTrajectoryWidth(n int) Option {
	if n < 1 {
		panic("report: WithTrajectoryWidth(n<1)")
	}
	return func(p *Printer) { p.width = n }
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, color: true, precision: 4, width: DefaultTrajectoryWidth}
	for _, set := range opts {
		set(p)
	}

	return p
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Render(text)
}

func (p *Printer) prob(v float64) string {
	return fmt.Sprintf("%.*f", p.precision, v)
}

func (p *Printer) heading(title string) {
	if title != "" {
		fmt.Fprintln(p.w, p.render(headerStyle, title))
	}
}

// Matrix prints m with states labelling rows and columns.
func (p *Printer) Matrix(title string, states []string, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if m.Rows() != len(states) || m.Cols() != len(states) {
		return fmt.Errorf("%w: %d states, %dx%d matrix", ErrLengthMismatch, len(states), m.Rows(), m.Cols())
	}
	p.heading(title)

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, s := range states {
		fmt.Fprintf(tw, "\t%s", p.render(stateStyle, s))
	}
	fmt.Fprintln(tw)
	for i := range states {
		row, err := m.Row(i)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		fmt.Fprint(tw, p.render(stateStyle, states[i]))
		for _, v := range row {
			fmt.Fprintf(tw, "\t%s", p.render(probStyle, p.prob(v)))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// SteadyState prints one "state  probability" line per state.
func (p *Printer) SteadyState(states []string, pi []float64) error {
	if len(pi) != len(states) {
		return fmt.Errorf("%w: %d states, %d probabilities", ErrLengthMismatch, len(states), len(pi))
	}
	p.heading("steady state")

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for i, s := range states {
		fmt.Fprintf(tw, "%s\t%s\n", p.render(stateStyle, s), p.render(probStyle, p.prob(pi[i])))
	}

	return tw.Flush()
}

// Trajectory draws one strip per state: '█' where the run occupied the state
// at that step, '·' elsewhere. Long runs are truncated to the configured width.
func (p *Printer) Trajectory(states []string, history []int) error {
	for t, s := range history {
		if s < 0 || s >= len(states) {
			return fmt.Errorf("report: history[%d] = %d: %w", t, s, markov.ErrStateOutOfRange)
		}
	}
	p.heading("trajectory")

	shown := history
	if len(shown) > p.width {
		shown = shown[:p.width]
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	var sb strings.Builder
	for i, label := range states {
		sb.Reset()
		for _, s := range shown {
			if s == i {
				sb.WriteRune('█')
			} else {
				sb.WriteRune('·')
			}
		}
		fmt.Fprintf(tw, "%s\t%s\n", p.render(stateStyle, label), sb.String())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(shown) < len(history) {
		fmt.Fprintln(p.w, p.render(noteStyle, fmt.Sprintf("showing %d of %d steps", len(shown), len(history))))
	}

	return nil
}

// Histogram prints theoretical and simulated occupancy side by side, as a
// table followed by a horizontal bar chart.
func (p *Printer) Histogram(states []string, theoretical, simulated []float64) error {
	if len(theoretical) != len(states) || len(simulated) != len(states) {
		return fmt.Errorf("%w: %d states, %d theoretical, %d simulated",
			ErrLengthMismatch, len(states), len(theoretical), len(simulated))
	}
	p.heading("theoretical vs simulated")

	data := pterm.TableData{{"state", "theoretical", "simulated", "difference"}}
	bars := make(pterm.Bars, 0, 2*len(states))
	for i, s := range states {
		data = append(data, []string{
			s,
			p.prob(theoretical[i]),
			p.prob(simulated[i]),
			fmt.Sprintf("%+.*f", p.precision, simulated[i]-theoretical[i]),
		})
		bars = append(bars,
			pterm.Bar{Label: s + " theory", Value: permille(theoretical[i])},
			pterm.Bar{Label: s + " sim", Value: permille(simulated[i])},
		)
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("report: table: %w", err)
	}
	chart, err := pterm.DefaultBarChart.WithBars(bars).WithHorizontal().Srender()
	if err != nil {
		return fmt.Errorf("report: bar chart: %w", err)
	}
	fmt.Fprintln(p.w, table)
	fmt.Fprintln(p.w, chart)

	return nil
}

// permille scales a probability to an integer bar length.
func permille(v float64) int {
	return int(v*1000 + 0.5)
}

// Classes prints the communicating classes of a chain.
func (p *Printer) Classes(states []string, k markov.Classification) error {
	p.heading("classes")

	names := func(idx []int) string {
		out := make([]string, len(idx))
		for i, s := range idx {
			out[i] = states[s]
		}

		return strings.Join(out, ", ")
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		p.render(headerStyle, "class"),
		p.render(headerStyle, "kind"),
		p.render(headerStyle, "period"))
	for _, c := range k.Classes {
		for _, s := range c.States {
			if s < 0 || s >= len(states) {
				return fmt.Errorf("report: class member %d: %w", s, markov.ErrStateOutOfRange)
			}
		}
		kind := "transient"
		if c.Closed {
			kind = "closed"
		}
		fmt.Fprintf(tw, "{%s}\t%s\t%d\n", p.render(stateStyle, names(c.States)), kind, c.Period)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(k.Absorbing) > 0 {
		fmt.Fprintf(p.w, "absorbing: %s\n", names(k.Absorbing))
	}
	switch {
	case k.Ergodic():
		fmt.Fprintln(p.w, p.render(noteStyle, "irreducible and aperiodic: unique steady state, P^n converges"))
	case k.Irreducible:
		fmt.Fprintln(p.w, p.render(noteStyle, "irreducible but periodic: unique steady state, P^n oscillates"))
	case len(k.Closed()) > 1:
		fmt.Fprintln(p.w, p.render(noteStyle, "several closed classes: the steady state is not unique"))
	default:
		fmt.Fprintln(p.w, p.render(noteStyle, "reducible with a single closed class"))
	}

	return nil
}
