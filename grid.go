package nono

import (
	"fmt"
	"strings"

	"crosswarped.com/nono/pkg/primitives"
)

// Direction is an enum representing the direction of a line in a grid, either
// 'Horizontal' (a row) or 'Vertical' (a column).
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

func (d Direction) String() string {
	if d == DirectionVertical {
		return "col"
	}
	return "row"
}

// Grid is a height×width matrix of cells plus the row and column clues.
//
// Rows and columns are views over the same storage: a write through a row is
// visible through the crossing column and vice versa.
type Grid struct {
	width, height int
	rowClues      []primitives.Clue
	colClues      []primitives.Clue
	cells         [][]primitives.Cell // cells[y][x]
}

// NewGrid returns an all-Unknown grid with the given clues. It requires
// len(rowClues) == height and len(colClues) == width.
func NewGrid(width, height int, rowClues, colClues []primitives.Clue) *Grid {
	cells := make([][]primitives.Cell, height)
	for y := range cells {
		cells[y] = primitives.NewLine(width)
	}
	return &Grid{
		width:    width,
		height:   height,
		rowClues: rowClues,
		colClues: colClues,
		cells:    cells,
	}
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Get returns the cell at column x, row y.
func (g *Grid) Get(x, y int) primitives.Cell {
	return g.cells[y][x]
}

// Set writes the cell at column x, row y.
func (g *Grid) Set(x, y int, v primitives.Cell) {
	g.cells[y][x] = v
}

// lineCount returns the number of lines in the given direction.
func (g *Grid) lineCount(dir Direction) int {
	if dir == DirectionVertical {
		return g.width
	}
	return g.height
}

// clue returns the clue for line idx in the given direction.
func (g *Grid) clue(dir Direction, idx int) primitives.Clue {
	if dir == DirectionVertical {
		return g.colClues[idx]
	}
	return g.rowClues[idx]
}

// line copies out the current state of line idx in the given direction.
func (g *Grid) line(dir Direction, idx int) primitives.Line {
	if dir == DirectionVertical {
		col := make(primitives.Line, g.height)
		for y := 0; y < g.height; y++ {
			col[y] = g.cells[y][idx]
		}
		return col
	}
	row := make(primitives.Line, g.width)
	copy(row, g.cells[idx])
	return row
}

// applyLine writes every determined cell of values into line idx, returning
// how many cells changed and whether a write conflicted with a cell already
// determined to the opposite value.
func (g *Grid) applyLine(dir Direction, idx int, values primitives.Line) (changed int, conflict bool) {
	for i, v := range values {
		if v == primitives.Unknown {
			continue
		}
		x, y := i, idx
		if dir == DirectionVertical {
			x, y = idx, i
		}
		cur := g.cells[y][x]
		if cur == v {
			continue
		}
		if cur != primitives.Unknown {
			return changed, true
		}
		g.cells[y][x] = v
		changed++
	}
	return changed, false
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) primitives.Line {
	return g.line(DirectionHorizontal, y)
}

// Col returns a copy of column x.
func (g *Grid) Col(x int) primitives.Line {
	return g.line(DirectionVertical, x)
}

// RowClue returns the clue for row y.
func (g *Grid) RowClue(y int) primitives.Clue {
	return g.rowClues[y]
}

// ColClue returns the clue for column x.
func (g *Grid) ColClue(x int) primitives.Clue {
	return g.colClues[x]
}

// Unknowns returns the number of cells still undetermined.
func (g *Grid) Unknowns() int {
	count := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == primitives.Unknown {
				count++
			}
		}
	}
	return count
}

// Solved reports whether every cell is determined.
func (g *Grid) Solved() bool {
	return g.Unknowns() == 0
}

// Clone returns a deep copy of the grid. Clues are shared; they are
// immutable once loaded.
func (g *Grid) Clone() *Grid {
	cells := make([][]primitives.Cell, g.height)
	for y := range cells {
		cells[y] = make(primitives.Line, g.width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{
		width:    g.width,
		height:   g.height,
		rowClues: g.rowClues,
		colClues: g.colClues,
		cells:    cells,
	}
}

// copyFrom overwrites g's cells with those of other. The grids must have the
// same dimensions.
func (g *Grid) copyFrom(other *Grid) {
	for y := range g.cells {
		copy(g.cells[y], other.cells[y])
	}
}

// Repr renders the grid with one row per output line: '#' filled, '.' empty,
// '?' unknown.
func (g *Grid) Repr() string {
	lines := make([]string, g.height)
	for y := range g.cells {
		lines[y] = primitives.Line(g.cells[y]).String()
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, unknowns: %d}", g.width, g.height, g.Unknowns())
}
