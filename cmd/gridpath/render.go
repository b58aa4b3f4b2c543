package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// renderGrid prints gg one row per line: '#' blocked, '.' passable,
// '*' on the route, 'S' and 'G' for the endpoints when they are in bounds.
func renderGrid(w io.Writer, gg *gridgraph.GridGraph, path []gridgraph.Cell, start, goal gridgraph.Cell) {
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	for r := 0; r < gg.Rows; r++ {
		sb.Reset()
		for c := 0; c < gg.Cols; c++ {
			cell := gridgraph.Cell{Row: r, Col: c}
			mark := byte('.')
			switch {
			case cell == start:
				mark = 'S'
			case cell == goal:
				mark = 'G'
			case !gg.IsPassable(cell):
				mark = '#'
			case onPath[cell]:
				mark = '*'
			}
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(mark)
		}
		fmt.Fprintln(w, sb.String())
	}
}
