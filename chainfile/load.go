// SPDX-License-Identifier: MIT
// Package chainfile: HCL / YAML chain definitions.

package chainfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/markovian/markov"
)

// Format identifies a definition file syntax.
type Format int

const (
	// FormatHCL is HashiCorp configuration language (.hcl).
	FormatHCL Format = iota
	// FormatYAML is YAML (.yaml, .yml).
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatHCL:
		return "hcl"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Definition is one named chain as written in a file.
type Definition struct {
	Name        string      `hcl:"name,label" yaml:"name"`
	Description string      `hcl:"description,optional" yaml:"description,omitempty"`
	States      []string    `hcl:"states" yaml:"states"`
	Matrix      [][]float64 `hcl:"matrix" yaml:"matrix"`
}

// Chain builds the markov.Chain described by d.
func (d Definition) Chain(opts ...markov.Option) (*markov.Chain, error) {
	c, err := markov.New(d.States, d.Matrix, opts...)
	if err != nil {
		return nil, fmt.Errorf("chain %q: %w", d.Name, err)
	}

	return c, nil
}

// hclDocument is the root of an HCL definition file.
type hclDocument struct {
	Chains []Definition `hcl:"chain,block"`
}

// yamlDocument is the root of a YAML definition file.
type yamlDocument struct {
	Chains []Definition `yaml:"chains"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// LoadFile reads every definition in path; the format follows the extension.
func LoadFile(path string) ([]Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chainfile: read %s: %w", path, err)
	}

	return Parse(data, path, format)
}

// Parse decodes definitions from data. filename only labels diagnostics.
// Every definition must have a unique, non-empty name.
func Parse(data []byte, filename string, format Format) ([]Definition, error) {
	var (
		defs []Definition
		err  error
	)
	switch format {
	case FormatHCL:
		defs, err = parseHCL(data, filename)
	case FormatYAML:
		defs, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(defs))
	for i, d := range defs {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: chain %d in %s has no name", ErrInvalidInput, i, filename)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: chain %q defined twice in %s", ErrInvalidInput, name, filename)
		}
		seen[name] = struct{}{}
		defs[i].Name = name
	}

	return defs, nil
}

func parseHCL(data []byte, filename string) ([]Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse HCL: %s", ErrInvalidInput, diags.Error())
	}

	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode HCL: %s", ErrInvalidInput, diags.Error())
	}

	return doc.Chains, nil
}

func parseYAML(data []byte) ([]Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc yamlDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode YAML: %v", ErrInvalidInput, err)
	}

	return doc.Chains, nil
}

// Select returns the definition called name, or the first one when name is empty.
func Select(defs []Definition, name string) (Definition, error) {
	if len(defs) == 0 {
		return Definition{}, fmt.Errorf("%w: no chains defined", ErrChainNotFound)
	}
	if name == "" {
		return defs[0], nil
	}
	for _, d := range defs {
		if d.Name == name {
			return d, nil
		}
	}

	return Definition{}, fmt.Errorf("%w: %q", ErrChainNotFound, name)
}
