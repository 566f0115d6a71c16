package nono

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"

	"crosswarped.com/nono/internal"
	"crosswarped.com/nono/pkg/primitives"
)

// propagateOnce runs a single propagation pass: for every row and column,
// intersect the candidate patterns that survive the line's known cells and
// apply the forced values. Candidates are generated from a snapshot of the
// grid as it stood at pass start, so the scan order has no effect on the
// result and step semantics stay well defined.
//
// Contradiction is a line with zero surviving candidates, or two lines
// forcing opposite values into the same cell from the same start state.
func propagateOnce(g *Grid, cache *internal.CandidateCache) (changed int, contradiction bool) {
	snapshot := g.Clone()
	for _, dir := range []Direction{DirectionHorizontal, DirectionVertical} {
		for idx := 0; idx < g.lineCount(dir); idx++ {
			state := snapshot.line(dir, idx)
			cands := cache.Candidates(snapshot.clue(dir, idx), state)
			if len(cands) == 0 {
				log.WithFields(logFields(dir, idx)).Debug("line has no surviving patterns")
				return changed, true
			}
			forced, _ := primitives.Intersect(slices.Values(cands))
			n, conflict := g.applyLine(dir, idx, forced)
			changed += n
			if conflict {
				log.WithFields(logFields(dir, idx)).Debug("conflicting forced values")
				return changed, true
			}
		}
	}
	return changed, false
}

// propagate iterates propagateOnce to fixpoint. It returns ok=false on
// contradiction and a non-nil error only when ctx is cancelled; the
// cancellation signal is polled at the start of every pass.
func propagate(ctx context.Context, g *Grid, cache *internal.CandidateCache, stats *Stats) (ok bool, err error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		stats.Passes++
		changed, contradiction := propagateOnce(g, cache)
		if contradiction {
			return false, nil
		}
		log.WithFields(logrus.Fields{
			"pass":     stats.Passes,
			"changed":  changed,
			"unknowns": g.Unknowns(),
		}).Debug("propagation pass")
		if changed == 0 {
			return true, nil
		}
	}
}

func logFields(dir Direction, idx int) logrus.Fields {
	return logrus.Fields{"line": dir.String(), "index": idx}
}
