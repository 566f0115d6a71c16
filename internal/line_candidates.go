package internal

import (
	"slices"
	"strings"

	"crosswarped.com/nono/pkg/primitives"
)

// DefaultCacheSize bounds the number of memoized line states.
const DefaultCacheSize = 20000

// CandidateCache memoizes the materialized candidate patterns for a
// (clue, line state) pair. Propagation revisits unchanged lines on every
// pass and search branches re-derive the same states constantly, so the
// hit rate is high in practice.
//
// Returned slices are shared; callers must not mutate them or the lines
// they contain.
type CandidateCache struct {
	maxEntries int
	entries    map[string][]primitives.Line
}

func NewCandidateCache(maxEntries int) *CandidateCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	return &CandidateCache{
		maxEntries: maxEntries,
		entries:    make(map[string][]primitives.Line),
	}
}

// Candidates returns every pattern of clue consistent with state, in the
// generator's order. An empty result means the line is contradicted.
func (c *CandidateCache) Candidates(clue primitives.Clue, state primitives.Line) []primitives.Line {
	key := cacheKey(clue, state)
	if cached, ok := c.entries[key]; ok {
		return cached
	}

	cands := slices.Collect(clue.Candidates(state))

	if len(c.entries) >= c.maxEntries {
		// A full reset is cruder than LRU eviction but keeps the map bounded
		// without per-entry bookkeeping.
		c.entries = make(map[string][]primitives.Line)
	}
	c.entries[key] = cands
	return cands
}

// Len returns the number of memoized line states.
func (c *CandidateCache) Len() int {
	return len(c.entries)
}

func cacheKey(clue primitives.Clue, state primitives.Line) string {
	var sb strings.Builder
	sb.Grow(len(clue)*3 + len(state) + 1)
	sb.WriteString(clue.String())
	sb.WriteByte('|')
	sb.WriteString(state.String())
	return sb.String()
}
