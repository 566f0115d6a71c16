package nono

import (
	"context"

	"github.com/sirupsen/logrus"

	"crosswarped.com/nono/internal"
	"crosswarped.com/nono/pkg/primitives"
)

// lineRef identifies one line of the grid.
type lineRef struct {
	dir Direction
	idx int
}

// bestBranchLine picks the line to branch on: among lines that still have an
// Unknown cell, the one with the fewest (but more than one) surviving
// candidates. The scan order is fixed (rows top to bottom, then columns left
// to right, first minimum winning ties) so search results are reproducible.
//
// A nil candidate slice means no branchable line exists.
func bestBranchLine(g *Grid, cache *internal.CandidateCache) (lineRef, []primitives.Line) {
	var best lineRef
	var bestCands []primitives.Line
	for _, dir := range []Direction{DirectionHorizontal, DirectionVertical} {
		for idx := 0; idx < g.lineCount(dir); idx++ {
			state := g.line(dir, idx)
			if state.Solved() {
				continue
			}
			cands := cache.Candidates(g.clue(dir, idx), state)
			if len(cands) <= 1 {
				continue
			}
			if bestCands == nil || len(cands) < len(bestCands) {
				best = lineRef{dir: dir, idx: idx}
				bestCands = cands
			}
		}
	}
	return best, bestCands
}

// search branches over the surviving patterns of the most constrained line,
// recursively propagating each tentative assignment on a cloned grid, so
// sibling branches always see the exact pre-branch state. Complete grids are
// collected into r.solutions; the whole tree unwinds as soon as a second one
// is found. The only error returned is ctx's, polled at every branch entry.
func (r *solveRun) search(ctx context.Context, g *Grid, depth int) error {
	if depth > r.stats.MaxDepth {
		r.stats.MaxDepth = depth
	}

	ref, cands := bestBranchLine(g, r.cache)
	if cands == nil {
		// Unknown cells remain but every line is down to a single candidate.
		// Correct propagation never leaves the grid here; treat it as a
		// contradiction rather than looping.
		return nil
	}

	log.WithFields(logrus.Fields{
		"line":       ref.dir.String(),
		"index":      ref.idx,
		"candidates": len(cands),
		"depth":      depth,
	}).Debug("branching")

	for _, cand := range cands {
		if len(r.solutions) >= maxSolutions {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		r.stats.Nodes++

		branch := g.Clone()
		if _, conflict := branch.applyLine(ref.dir, ref.idx, cand); conflict {
			continue
		}

		ok, err := propagate(ctx, branch, r.cache, &r.stats)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if branch.Solved() {
			r.solutions = append(r.solutions, branch)
			continue
		}
		if err := r.search(ctx, branch, depth+1); err != nil {
			return err
		}
	}
	return nil
}
