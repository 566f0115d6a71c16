package primitives

import "strings"

// Cell is the state of a single grid square.
//
// The numeric values match the persisted encoding (-1/0/1) so a Cell can be
// written to and read from a puzzle file without translation.
type Cell int8

const (
	Unknown Cell = -1
	Empty   Cell = 0
	Filled  Cell = 1
)

// Valid reports whether c is one of the three defined states.
func (c Cell) Valid() bool {
	return c == Unknown || c == Empty || c == Filled
}

// Rune returns the display rune for a cell: '#' filled, '.' empty, '?' unknown.
func (c Cell) Rune() rune {
	switch c {
	case Filled:
		return '#'
	case Empty:
		return '.'
	default:
		return '?'
	}
}

// Line is one row or one column of a grid, in order. A line with no Unknown
// cells is a pattern: a concrete candidate filling.
type Line []Cell

// NewLine returns a line of the given length with every cell Unknown.
func NewLine(length int) Line {
	l := make(Line, length)
	for i := range l {
		l[i] = Unknown
	}
	return l
}

// Solved reports whether every cell in the line is determined.
func (l Line) Solved() bool {
	for _, c := range l {
		if c == Unknown {
			return false
		}
	}
	return true
}

// Matches reports whether l, a fully determined pattern, is still possible
// given the partially known state: every known cell of state must agree.
func (l Line) Matches(state Line) bool {
	for i, c := range state {
		if c != Unknown && c != l[i] {
			return false
		}
	}
	return true
}

func (l Line) String() string {
	var sb strings.Builder
	sb.Grow(len(l))
	for _, c := range l {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}
