package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
)

const corridorYAML = `
name: corridor
grid:
  - [1, 1, 1]
  - [0, 0, 1]
start: [0, 0]
goal: [1, 2]
`

const corridorHCL = `
name  = "corridor"
grid  = [[1, 1, 1], [0, 0, 1]]
start = [0, 0]
goal  = [1, 2]
`

const corridorJSON = `{
  "grid": [[1, 1, 1], [0, 0, 1]],
  "start": [0, 0],
  "goal": [1, 2]
}`

func TestParse_Formats(t *testing.T) {
	cases := []struct {
		file, data, name string
	}{
		{"corridor.yaml", corridorYAML, "corridor"},
		{"corridor.YML", corridorYAML, "corridor"},
		{"corridor.hcl", corridorHCL, "corridor"},
		{"maze.json", corridorJSON, "maze"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			s, err := scenario.Parse(tc.file, []byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.name, s.Name)
			assert.Equal(t, [][]int{{1, 1, 1}, {0, 0, 1}}, s.Grid)
			assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, s.StartCell())
			assert.Equal(t, gridgraph.Cell{Row: 1, Col: 2}, s.GoalCell())

			gg, err := s.GridGraph()
			require.NoError(t, err)
			assert.Equal(t, 2, gg.Rows)
			assert.Equal(t, 3, gg.Cols)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name, file, data string
		err              error
	}{
		{"Extension", "grid.txt", corridorYAML, scenario.ErrUnknownFormat},
		{"UnknownField", "a.yaml", corridorYAML + "speed: 3\n", scenario.ErrMalformed},
		{"ShortStart", "a.yaml", "grid: [[1]]\nstart: [0]\ngoal: [0, 0]\n", scenario.ErrMalformed},
		{"ShortGoal", "a.hcl", "grid = [[1]]\nstart = [0, 0]\ngoal = []\n", scenario.ErrMalformed},
		{"MissingGrid", "a.hcl", "start = [0, 0]\ngoal = [0, 0]\n", scenario.ErrMalformed},
		{"Ragged", "a.yaml", "grid: [[1, 1], [1]]\nstart: [0, 0]\ngoal: [0, 1]\n", scenario.ErrMalformed},
		{"Empty", "a.yaml", "", scenario.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse(tc.file, []byte(tc.data))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := scenario.Parse("a.yaml", []byte("grid: [[1, 1], [1]]\nstart: [0, 0]\ngoal: [0, 1]\n"))
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestParse_PassableThreshold(t *testing.T) {
	s, err := scenario.Parse("t.yaml", []byte("grid: [[2, 1, 2]]\nstart: [0, 0]\ngoal: [0, 2]\npassable_threshold: 2\n"))
	require.NoError(t, err)
	gg, err := s.GridGraph()
	require.NoError(t, err)
	assert.False(t, gg.IsPassable(gridgraph.Cell{Row: 0, Col: 1}))

	_, err = astar.FindPath(gg, s.StartCell(), s.GoalCell())
	assert.ErrorIs(t, err, astar.ErrUnreachable)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corridor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(corridorHCL), 0o600))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "corridor", s.Name)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestDefault runs the reference map end to end.
func TestDefault(t *testing.T) {
	s := scenario.Default()
	assert.Equal(t, "reference", s.Name)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 1}, s.StartCell())
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 6}, s.GoalCell())

	gg, err := s.GridGraph()
	require.NoError(t, err)
	assert.Equal(t, 8, gg.Rows)
	assert.Equal(t, 8, gg.Cols)

	res, err := astar.FindPath(gg, s.StartCell(), s.GoalCell())
	require.NoError(t, err)
	assert.Equal(t, 16.0, res.Cost)
	assert.Equal(t, s.GoalCell(), res.Path[len(res.Path)-1])
}
