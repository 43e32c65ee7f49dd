// SPDX-License-Identifier: MIT
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// SimulationReport is the on-disk form of one simulate invocation.
type SimulationReport struct {
	Chain       string    `json:"chain,omitempty" yaml:"chain,omitempty"`
	States      []string  `json:"states" yaml:"states"`
	Initial     string    `json:"initial" yaml:"initial"`
	Steps       int       `json:"steps" yaml:"steps"`
	Theoretical []float64 `json:"theoretical,omitempty" yaml:"theoretical,omitempty"`
	Simulated   []float64 `json:"simulated" yaml:"simulated"`
	Runs        []Run     `json:"runs" yaml:"runs"`
}

// Run is a single simulated trajectory.
type Run struct {
	Seed        int64     `json:"seed" yaml:"seed"`
	History     []string  `json:"history" yaml:"history"`
	Frequencies []float64 `json:"frequencies" yaml:"frequencies"`
}

// Export writes r to path as YAML (.yaml, .yml) or JSON (anything else),
// replacing any existing file atomically.
func Export(path string, r SimulationReport) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(r)
	default:
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("report: marshal: %w", err)
	}

	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}
