package primitives

import (
	"iter"
	"slices"
)

// Candidates returns a lazy, restartable sequence of every pattern consistent
// with the clue and with the known cells of state. A pattern contains exactly
// the clue's blocks in order, adjacent blocks separated by at least one empty
// cell, and agrees with every non-Unknown cell of state.
//
// The sequence is empty when the clue cannot fit (MinLength > len(state)) or
// when the known cells rule out every placement. Candidates never mutates
// state; each yielded line is a fresh copy safe to retain.
func (c Clue) Candidates(state Line) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		length := len(state)

		if len(c) == 0 {
			for _, v := range state {
				if v == Filled {
					return
				}
			}
			yield(make(Line, length))
			return
		}

		if c.MinLength() > length {
			return
		}

		// Suffix minimum lengths: rest[i] is the room needed by blocks i..end,
		// including the separator before block i.
		rest := make([]int, len(c)+1)
		for i := len(c) - 1; i >= 0; i-- {
			rest[i] = rest[i+1] + c[i] + 1
		}

		buf := make(Line, length)

		var place func(idx, pos int) bool
		place = func(idx, pos int) bool {
			if idx == len(c) {
				for i := pos; i < length; i++ {
					if state[i] == Filled {
						return true
					}
				}
				return yield(slices.Clone(buf))
			}

			block := c[idx]
			maxStart := length - (block + rest[idx+1])

			for start := pos; start <= maxStart; start++ {
				// Cells skipped before the block become empty; a known Filled
				// cell there rules out this start and every later one.
				if start > pos && state[start-1] == Filled {
					return true
				}

				ok := true
				for i := start; i < start+block; i++ {
					if state[i] == Empty {
						ok = false
						break
					}
				}
				if !ok {
					continue
				}

				for i := start; i < start+block; i++ {
					buf[i] = Filled
				}

				cont := true
				if idx < len(c)-1 {
					// Mandatory separator after a non-final block.
					if next := start + block; state[next] != Filled {
						cont = place(idx+1, next+1)
					}
				} else {
					cont = place(idx+1, start+block)
				}

				for i := start; i < start+block; i++ {
					buf[i] = Empty
				}

				if !cont {
					return false
				}
			}
			return true
		}

		place(0, 0)
	}
}

// Patterns enumerates every pattern of the clue for a line of the given
// length, with no cells known in advance.
func (c Clue) Patterns(length int) iter.Seq[Line] {
	return c.Candidates(NewLine(length))
}

// Intersect folds a candidate sequence into its cell-wise intersection: a
// cell is Filled or Empty in the result only if it has that value in every
// candidate, and Unknown otherwise. The second return is the number of
// candidates seen; a nil line means the sequence was empty.
func Intersect(candidates iter.Seq[Line]) (Line, int) {
	var acc Line
	count := 0
	for cand := range candidates {
		count++
		if acc == nil {
			acc = slices.Clone(cand)
			continue
		}
		for i, v := range cand {
			if acc[i] != v {
				acc[i] = Unknown
			}
		}
	}
	return acc, count
}
