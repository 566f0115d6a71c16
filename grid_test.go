package nono

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"crosswarped.com/nono/pkg/primitives"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()
	return NewGrid(3, 2,
		[]primitives.Clue{{1}, {2}},
		[]primitives.Clue{{1}, {1}, {1}},
	)
}

func TestGrid(t *testing.T) {
	t.Run("starts all unknown", func(t *testing.T) {
		g := testGrid(t)
		if got, want := g.Unknowns(), 6; got != want {
			t.Errorf("Unknowns() = %d, want %d", got, want)
		}
		if g.Solved() {
			t.Error("fresh grid reports Solved")
		}
		if diff := cmp.Diff("???\n???", g.Repr()); diff != "" {
			t.Errorf("Repr (-want +got): %s", diff)
		}
	})

	t.Run("rows and columns view the same cells", func(t *testing.T) {
		g := testGrid(t)
		g.Set(1, 0, primitives.Filled)

		if got := g.Row(0).String(); got != "?#?" {
			t.Errorf("Row(0) = %q, want \"?#?\"", got)
		}
		if got := g.Col(1).String(); got != "#?" {
			t.Errorf("Col(1) = %q, want \"#?\"", got)
		}
	})

	t.Run("row and column accessors return copies", func(t *testing.T) {
		g := testGrid(t)
		g.Row(0)[0] = primitives.Filled
		g.Col(2)[1] = primitives.Empty
		if got := g.Unknowns(); got != 6 {
			t.Errorf("mutating accessor results changed the grid: Unknowns() = %d, want 6", got)
		}
	})

	t.Run("clue accessors", func(t *testing.T) {
		g := testGrid(t)
		if got := g.RowClue(1).String(); got != "2" {
			t.Errorf("RowClue(1) = %q, want \"2\"", got)
		}
		if got := g.ColClue(0).String(); got != "1" {
			t.Errorf("ColClue(0) = %q, want \"1\"", got)
		}
	})
}

func TestGridApplyLine(t *testing.T) {
	t.Run("writes determined cells only", func(t *testing.T) {
		g := testGrid(t)
		values := primitives.Line{primitives.Filled, primitives.Unknown, primitives.Empty}
		changed, conflict := g.applyLine(DirectionHorizontal, 0, values)
		if conflict {
			t.Fatal("applyLine reported a conflict on an empty grid")
		}
		if changed != 2 {
			t.Errorf("changed = %d, want 2", changed)
		}
		if got := g.Row(0).String(); got != "#?." {
			t.Errorf("Row(0) = %q, want \"#?.\"", got)
		}
	})

	t.Run("vertical writes land in the column", func(t *testing.T) {
		g := testGrid(t)
		changed, conflict := g.applyLine(DirectionVertical, 2, primitives.Line{primitives.Filled, primitives.Filled})
		if conflict || changed != 2 {
			t.Fatalf("applyLine = (%d, %v), want (2, false)", changed, conflict)
		}
		if got := g.Col(2).String(); got != "##" {
			t.Errorf("Col(2) = %q, want \"##\"", got)
		}
	})

	t.Run("rewriting the same value is a no-op", func(t *testing.T) {
		g := testGrid(t)
		g.Set(0, 0, primitives.Filled)
		changed, conflict := g.applyLine(DirectionHorizontal, 0, primitives.Line{primitives.Filled, primitives.Unknown, primitives.Unknown})
		if conflict || changed != 0 {
			t.Errorf("applyLine = (%d, %v), want (0, false)", changed, conflict)
		}
	})

	t.Run("opposing write is a conflict", func(t *testing.T) {
		g := testGrid(t)
		g.Set(0, 0, primitives.Filled)
		_, conflict := g.applyLine(DirectionHorizontal, 0, primitives.Line{primitives.Empty, primitives.Unknown, primitives.Unknown})
		if !conflict {
			t.Error("applyLine did not report an opposing write")
		}
		if got := g.Get(0, 0); got != primitives.Filled {
			t.Errorf("conflicting write overwrote the cell: got %v", got)
		}
	})
}

func TestGridClone(t *testing.T) {
	g := testGrid(t)
	g.Set(0, 0, primitives.Filled)

	clone := g.Clone()
	if diff := cmp.Diff(g.Repr(), clone.Repr()); diff != "" {
		t.Fatalf("clone differs from original (-orig +clone): %s", diff)
	}

	clone.Set(2, 1, primitives.Empty)
	if g.Get(2, 1) != primitives.Unknown {
		t.Error("writing the clone changed the original")
	}
	g.Set(1, 0, primitives.Filled)
	if clone.Get(1, 0) != primitives.Unknown {
		t.Error("writing the original changed the clone")
	}
}

func TestGridCopyFrom(t *testing.T) {
	g := testGrid(t)
	other := testGrid(t)
	other.Set(0, 0, primitives.Filled)
	other.Set(1, 1, primitives.Empty)

	g.copyFrom(other)
	if diff := cmp.Diff(other.Repr(), g.Repr()); diff != "" {
		t.Errorf("copyFrom mismatch (-other +g): %s", diff)
	}
}

func TestDirectionString(t *testing.T) {
	if got := DirectionHorizontal.String(); got != "row" {
		t.Errorf("DirectionHorizontal = %q, want \"row\"", got)
	}
	if got := DirectionVertical.String(); got != "col" {
		t.Errorf("DirectionVertical = %q, want \"col\"", got)
	}
}
