package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

// Clue is the ordered block-length sequence for one line: each entry is the
// length of a contiguous filled run, left to right (or top to bottom). An
// empty clue means the line has no filled cells.
type Clue []int

// ParseClue parses dot-separated block lengths, e.g. "3.1.2" -> [3 1 2].
// The empty string parses to the empty clue.
func ParseClue(s string) (Clue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Clue{}, nil
	}
	parts := strings.Split(s, ".")
	clue := make(Clue, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("clue %q: %w", s, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("clue %q: block length must be positive, got %d", s, n)
		}
		clue = append(clue, n)
	}
	return clue, nil
}

// Sum returns the total number of filled cells the clue demands.
func (c Clue) Sum() int {
	total := 0
	for _, b := range c {
		total += b
	}
	return total
}

// MinLength returns the shortest line the clue fits in: the blocks plus one
// separating empty cell between each adjacent pair. Zero for the empty clue.
func (c Clue) MinLength() int {
	if len(c) == 0 {
		return 0
	}
	return c.Sum() + len(c) - 1
}

func (c Clue) String() string {
	if len(c) == 0 {
		return ""
	}
	parts := make([]string, len(c))
	for i, b := range c {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, ".")
}
