package nono

import (
	"context"

	"github.com/sirupsen/logrus"

	"crosswarped.com/nono/internal"
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetVerbose switches the solver's progress logging between debug and the
// default warn level.
func SetVerbose(v bool) {
	if v {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

// Status is the outcome of a step or solve call.
type Status int

const (
	// StatusIncomplete means propagation made progress (or none was possible)
	// but the grid is not fully determined; only Step returns it.
	StatusIncomplete Status = iota
	StatusNoSolution
	StatusUniqueSolution
	StatusMultipleSolutions
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusNoSolution:
		return "no solution"
	case StatusUniqueSolution:
		return "unique solution"
	case StatusMultipleSolutions:
		return "multiple solutions"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Stats captures how much work a solve did.
type Stats struct {
	Passes     int // propagation passes, across all branches
	Nodes      int // search branches entered
	MaxDepth   int // deepest branch level reached
	FixedCells int // determined cells in the caller's grid when done
}

// Result is the outcome of a full solve.
type Result struct {
	Status    Status
	Solutions []*Grid // complete solutions found, at most two
	Stats     Stats
}

// maxSolutions bounds the search: one solution past unique is all that is
// needed to tell unique from ambiguous.
const maxSolutions = 2

// Solver runs propagation and search over grids. It keeps a candidate cache
// across calls; a Solver must not be used from more than one goroutine at a
// time.
type Solver struct {
	cache *internal.CandidateCache
}

func NewSolver() *Solver {
	return &Solver{cache: internal.NewCandidateCache(internal.DefaultCacheSize)}
}

// Step runs exactly one propagation pass over every row and column, applying
// cells forced by the grid state as it stood at pass start. It reports
// whether any cell changed, and NoSolution on contradiction, UniqueSolution
// when the grid became fully determined, Incomplete otherwise.
func (s *Solver) Step(g *Grid) (bool, Status) {
	changed, contradiction := propagateOnce(g, s.cache)
	switch {
	case contradiction:
		return changed > 0, StatusNoSolution
	case g.Solved():
		return changed > 0, StatusUniqueSolution
	default:
		return changed > 0, StatusIncomplete
	}
}

// Solve propagates g to fixpoint in place, then backtracks over the most
// constrained lines until the solution count is settled. Cancelling ctx
// unwinds promptly; cells propagated before the cancellation remain set.
// On a unique solution the grid is left fully determined.
func (s *Solver) Solve(ctx context.Context, g *Grid) Result {
	run := &solveRun{cache: s.cache}

	result := func(status Status) Result {
		run.stats.FixedCells = g.width*g.height - g.Unknowns()
		return Result{Status: status, Solutions: run.solutions, Stats: run.stats}
	}

	ok, err := propagate(ctx, g, run.cache, &run.stats)
	if err != nil {
		return result(StatusCancelled)
	}
	if !ok {
		return result(StatusNoSolution)
	}
	if g.Solved() {
		run.solutions = append(run.solutions, g.Clone())
		return result(StatusUniqueSolution)
	}

	if err := run.search(ctx, g, 0); err != nil {
		return result(StatusCancelled)
	}

	switch len(run.solutions) {
	case 0:
		return result(StatusNoSolution)
	case 1:
		g.copyFrom(run.solutions[0])
		return result(StatusUniqueSolution)
	default:
		return result(StatusMultipleSolutions)
	}
}

// solveRun holds the mutable state of one Solve call.
type solveRun struct {
	cache     *internal.CandidateCache
	solutions []*Grid
	stats     Stats
}
