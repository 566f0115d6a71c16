package nono

import (
	"encoding/json"
	"fmt"
	"os"

	"crosswarped.com/nono/pkg/primitives"
)

// Puzzle is the persisted form of a nonogram: dimensions, clues, and the
// current cell states encoded as -1 (unknown), 0 (empty), 1 (filled).
type Puzzle struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	RowClues [][]int `json:"row_clues"`
	ColClues [][]int `json:"col_clues"`
	Grid     [][]int `json:"grid,omitempty"`
}

// Validate checks the puzzle's internal consistency: positive dimensions,
// one clue per row and column, positive block lengths, and grid cells (when
// present) shaped height×width with values in {-1, 0, 1}.
func (p *Puzzle) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", p.Width, p.Height)
	}
	if len(p.RowClues) != p.Height {
		return fmt.Errorf("expected %d row clues, got %d", p.Height, len(p.RowClues))
	}
	if len(p.ColClues) != p.Width {
		return fmt.Errorf("expected %d column clues, got %d", p.Width, len(p.ColClues))
	}
	for y, clue := range p.RowClues {
		for _, b := range clue {
			if b <= 0 {
				return fmt.Errorf("row %d: block length must be positive, got %d", y, b)
			}
		}
	}
	for x, clue := range p.ColClues {
		for _, b := range clue {
			if b <= 0 {
				return fmt.Errorf("col %d: block length must be positive, got %d", x, b)
			}
		}
	}
	if p.Grid == nil {
		return nil
	}
	if len(p.Grid) != p.Height {
		return fmt.Errorf("expected %d grid rows, got %d", p.Height, len(p.Grid))
	}
	for y, row := range p.Grid {
		if len(row) != p.Width {
			return fmt.Errorf("grid row %d: expected %d cells, got %d", y, p.Width, len(row))
		}
		for x, v := range row {
			if !primitives.Cell(v).Valid() {
				return fmt.Errorf("grid cell (%d,%d): value %d not in {-1,0,1}", x, y, v)
			}
		}
	}
	return nil
}

// ToGrid validates the puzzle and builds the in-memory grid. A missing grid
// field starts all cells Unknown.
func (p *Puzzle) ToGrid() (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rowClues := make([]primitives.Clue, p.Height)
	for y, c := range p.RowClues {
		rowClues[y] = primitives.Clue(c)
	}
	colClues := make([]primitives.Clue, p.Width)
	for x, c := range p.ColClues {
		colClues[x] = primitives.Clue(c)
	}

	g := NewGrid(p.Width, p.Height, rowClues, colClues)
	for y, row := range p.Grid {
		for x, v := range row {
			g.cells[y][x] = primitives.Cell(v)
		}
	}
	return g, nil
}

// Puzzle serializes the grid back into its persisted form: the same clues
// plus the current cell states.
func (g *Grid) Puzzle() *Puzzle {
	rowClues := make([][]int, g.height)
	for y, c := range g.rowClues {
		rowClues[y] = append([]int{}, c...)
	}
	colClues := make([][]int, g.width)
	for x, c := range g.colClues {
		colClues[x] = append([]int{}, c...)
	}
	cells := make([][]int, g.height)
	for y, row := range g.cells {
		cells[y] = make([]int, g.width)
		for x, v := range row {
			cells[y][x] = int(v)
		}
	}
	return &Puzzle{
		Width:    g.width,
		Height:   g.height,
		RowClues: rowClues,
		ColClues: colClues,
		Grid:     cells,
	}
}

// LoadPuzzle reads and validates a puzzle JSON file.
func LoadPuzzle(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// Save writes the puzzle as indented JSON.
func (p *Puzzle) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
