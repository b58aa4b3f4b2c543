// Package scenario loads path-finding inputs (an occupancy grid plus a start
// and goal cell) from YAML, HCL or HCL-JSON files.
//
// A YAML scenario looks like:
//
//	name: corridor
//	grid:
//	  - [1, 1, 1]
//	  - [0, 0, 1]
//	start: [0, 0]
//	goal: [1, 2]
//
// and the equivalent HCL:
//
//	name  = "corridor"
//	grid  = [[1, 1, 1], [0, 0, 1]]
//	start = [0, 0]
//	goal  = [1, 2]
//
// passable_threshold is optional; zero or absent means 1.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrUnknownFormat indicates an unsupported file extension.
	ErrUnknownFormat = errors.New("scenario: unknown file format")
	// ErrMalformed indicates a file that does not decode into a valid scenario.
	ErrMalformed = errors.New("scenario: malformed scenario")
)

//go:embed reference.yaml
var referenceYAML []byte

// Scenario is one grid plus a start/goal pair.
type Scenario struct {
	Name              string  `yaml:"name" hcl:"name,optional"`
	Grid              [][]int `yaml:"grid" hcl:"grid"`
	Start             []int   `yaml:"start" hcl:"start"`
	Goal              []int   `yaml:"goal" hcl:"goal"`
	PassableThreshold int     `yaml:"passable_threshold" hcl:"passable_threshold,optional"`
}

// Default returns the built-in 8×8 reference scenario, start (0,1), goal (3,6).
func Default() *Scenario {
	s, err := Parse("reference.yaml", referenceYAML)
	if err != nil {
		panic(err)
	}
	return s
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(filepath.Base(path), data)
}

// Parse decodes data according to the extension of name:
// .yaml/.yml as YAML, .hcl as native HCL, .json as HCL-JSON.
func Parse(name string, data []byte) (*Scenario, error) {
	var s Scenario
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
		}
	case ".hcl", ".json":
		if err := hclsimple.Decode(name, data, nil, &s); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Start) != 2 {
		return fmt.Errorf("start must be [row, col], got %v", s.Start)
	}
	if len(s.Goal) != 2 {
		return fmt.Errorf("goal must be [row, col], got %v", s.Goal)
	}
	_, err := s.GridGraph()
	return err
}

// GridGraph builds the immutable grid for this scenario.
func (s *Scenario) GridGraph() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if s.PassableThreshold != 0 {
		opts.PassableThreshold = s.PassableThreshold
	}
	return gridgraph.NewGridGraph(s.Grid, opts)
}

// StartCell returns the start coordinate.
func (s *Scenario) StartCell() gridgraph.Cell {
	return gridgraph.Cell{Row: s.Start[0], Col: s.Start[1]}
}

// GoalCell returns the goal coordinate.
func (s *Scenario) GoalCell() gridgraph.Cell {
	return gridgraph.Cell{Row: s.Goal[0], Col: s.Goal[1]}
}
