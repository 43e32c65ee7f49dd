// SPDX-License-Identifier: MIT

// Package report renders chain results for a terminal and exports simulation
// runs to disk.
//
// A Printer writes to any io.Writer:
//
//   - Matrix       a labelled transition (or forecast) matrix.
//   - SteadyState  state → probability pairs.
//   - Trajectory   one strip per state marking where a run was at each step.
//   - Histogram    theoretical steady state next to simulated frequencies.
//   - Classes      communicating classes, absorbing states and periods.
//
// Headings and values are styled with lipgloss; tables and bar charts come
// from pterm. Pass WithColor(false) (and call pterm.DisableStyling) for plain
// output, e.g. when stdout is not a terminal.
//
// Export writes a SimulationReport as JSON or YAML, chosen by extension. The
// file is replaced atomically, so readers never observe a partial report.
package report
