package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/obstacle"
)

// Map symbols.
const (
	SymbolStart = 'S'
	SymbolGoal  = 'G'
	SymbolOpen  = '.'
	SymbolWall  = '#'
)

// Scenario is the file form of a planning problem.
type Scenario struct {
	Name      string      `yaml:"name"`
	Map       []string    `yaml:"map"`
	Obstacles []Route     `yaml:"obstacles,omitempty"`
	Occupied  []Occupancy `yaml:"occupied,omitempty"`
}

// Route is a moving obstacle. Each point is a [row, col] pair.
type Route struct {
	Route [][]int `yaml:"route,flow"`
	Loop  bool    `yaml:"loop,omitempty"`
}

// Occupancy marks Cell as busy at each of Times.
type Occupancy struct {
	Cell  []int `yaml:"cell,flow"`
	Times []int `yaml:"times,flow"`
}

// World is a validated scenario.
type World struct {
	Name     string
	Grid     *gridgraph.GridGraph
	Start    gridgraph.Cell
	Goal     gridgraph.Cell
	Schedule obstacle.Schedule // obstacle.None{} when the scenario is static
	Dynamic  bool              // true if the scenario declares any obstacle
}

// Parse decodes a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	return &s, nil
}

// Load reads and decodes the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}
	return s, nil
}

// Marshal encodes s as YAML.
func Marshal(s *Scenario) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scenario: marshal: %w", err)
	}
	return out, nil
}

// Build validates s and returns the World it describes.
//
// Returns ErrNoStart, ErrNoGoal, ErrDuplicateMarker, ErrBadSymbol, ErrBadCell,
// or a wrapped gridgraph error for an empty or ragged map.
func (s *Scenario) Build() (*World, error) {
	w := &World{Name: s.Name}
	var haveStart, haveGoal bool

	values := make([][]int, len(s.Map))
	for r, line := range s.Map {
		row := []rune(line)
		values[r] = make([]int, len(row))
		for c, sym := range row {
			here := gridgraph.Cell{Row: r, Col: c}
			switch {
			case sym == SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second %q at %v", ErrDuplicateMarker, sym, here)
				}
				haveStart, w.Start = true, here
				values[r][c] = 1
			case sym == SymbolGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second %q at %v", ErrDuplicateMarker, sym, here)
				}
				haveGoal, w.Goal = true, here
				values[r][c] = 1
			case sym == SymbolOpen:
				values[r][c] = 1
			case sym == SymbolWall:
				values[r][c] = 0
			case sym >= '1' && sym <= '9':
				values[r][c] = int(sym - '0')
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadSymbol, sym, here)
			}
		}
	}

	g, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveGoal {
		return nil, ErrNoGoal
	}
	w.Grid = g

	sched, err := s.schedule(g)
	if err != nil {
		return nil, err
	}
	w.Dynamic = len(s.Obstacles) > 0 || len(s.Occupied) > 0
	if w.Dynamic {
		w.Schedule = sched
	} else {
		w.Schedule = obstacle.None{}
	}

	return w, nil
}

// schedule converts obstacles and occupied entries into one Schedule.
func (s *Scenario) schedule(g *gridgraph.GridGraph) (obstacle.Union, error) {
	movers := make(obstacle.Movers, 0, len(s.Obstacles))
	for i, o := range s.Obstacles {
		if len(o.Route) == 0 {
			return nil, fmt.Errorf("%w: obstacle %d has an empty route", ErrBadCell, i)
		}
		route := make([]gridgraph.Cell, len(o.Route))
		for j, p := range o.Route {
			c, err := toCell(g, p)
			if err != nil {
				return nil, fmt.Errorf("%w (obstacle %d, point %d)", err, i, j)
			}
			route[j] = c
		}
		movers = append(movers, obstacle.Mover{Route: route, Loop: o.Loop})
	}

	table := obstacle.NewTable()
	for i, o := range s.Occupied {
		c, err := toCell(g, o.Cell)
		if err != nil {
			return nil, fmt.Errorf("%w (occupied %d)", err, i)
		}
		table.Occupy(c, o.Times...)
	}

	return obstacle.Union{movers, table}, nil
}

// toCell checks that p is an in-bounds [row, col] pair.
func toCell(g *gridgraph.GridGraph, p []int) (gridgraph.Cell, error) {
	if len(p) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: want [row, col], got %v", ErrBadCell, p)
	}
	c := gridgraph.Cell{Row: p[0], Col: p[1]}
	if err := g.Check(c); err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %w", ErrBadCell, err)
	}
	return c, nil
}

// Example returns a small scenario with a looping patrol and a one-off
// blockage, suitable as a template.
func Example() *Scenario {
	return &Scenario{
		Name: "patrol",
		Map: []string{
			"S...#....",
			".##.#.##.",
			".#..1..#.",
			".#.###.#.",
			"....5...G",
		},
		Obstacles: []Route{
			{Route: [][]int{{2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}, {2, 5}, {2, 4}, {2, 3}}, Loop: true},
		},
		Occupied: []Occupancy{
			{Cell: []int{4, 3}, Times: []int{4, 5, 6}},
		},
	}
}
