// Package edit computes the edit distance between two strings and reconstructs one canonical
// sequence of operations that turns the first string into the second.
//
// Four operations are recognized, each with cost 1: replacing a character, transposing two
// adjacent characters, inserting a character and deleting a character. Matching characters cost
// nothing.
package edit

// Implementation note: The table is an optimal string alignment table (Damerau-Levenshtein
// restricted to adjacent transpositions). Equal characters always take the diagonal, even when a
// transposition or replacement path would be as cheap. The reconstruction walks the table from the
// bottom right corner back to the top left and picks, at every cell with differing characters, the
// predecessor with the lowest value. Ties are broken in the order Replace, Transpose, Insert,
// Delete. Callers compare whole sequences for equality, so that order must never change.

import (
	"fmt"
)

const debug bool = false

// Op describes an edit operation.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match     Op = iota // Two characters match; never part of a Sequence
	Replace             // A character of s0 is replaced by a character of s1
	Transpose           // Two adjacent characters of s0 are swapped
	Insert              // A character of s1 is inserted
	Delete              // A character of s0 is deleted
)

const letters = "MRTID"

// Letter returns the single letter tag of op: M, R, T, I or D.
func (op Op) Letter() byte {
	if op < Match || op > Delete {
		return '?'
	}
	return letters[op]
}

// ParseOp returns the operation for a single letter tag.
func ParseOp(letter byte) (Op, error) {
	for i := range len(letters) {
		if letters[i] == letter {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", letter)
}

// Result bundles the distance between two strings with the reconstructed sequence.
type Result struct {
	Distance int
	Sequence Sequence
}

// Distance returns the minimal number of operations needed to turn s0 into s1.
func Distance(s0, s1 string) int {
	if s0 == s1 {
		return 0
	}
	return NewTable(s0, s1).Distance()
}

// Reconstruct returns one minimal sequence of operations that turns s0 into s1, in top-down order
// (from the end of both strings towards their start). The sequence is empty iff s0 == s1.
func Reconstruct(s0, s1 string) Sequence {
	if s0 == s1 {
		return Sequence{}
	}
	x, y := []rune(s0), []rune(s1)
	return reconstruct(newTable(x, y), x, y)
}

// ReconstructTable is like Reconstruct but walks a table previously built with NewTable(s0, s1).
func ReconstructTable(t *Table, s0, s1 string) Sequence {
	x, y := []rune(s0), []rune(s1)
	if t.Rows() != len(x)+1 || t.Cols() != len(y)+1 {
		panic(fmt.Sprintf("table of size %dx%d does not match inputs of length %d and %d", t.Rows(), t.Cols(), len(x), len(y)))
	}
	return reconstruct(t, x, y)
}

// Compare returns both the distance and the reconstructed sequence of s0 and s1, building the
// table only once.
func Compare(s0, s1 string) Result {
	if s0 == s1 {
		return Result{Sequence: Sequence{}}
	}
	x, y := []rune(s0), []rune(s1)
	t := newTable(x, y)
	return Result{
		Distance: t.Distance(),
		Sequence: reconstruct(t, x, y),
	}
}

func reconstruct(t *Table, x, y []rune) Sequence {
	i, j := len(x), len(y)
	remaining := t.At(i, j)
	seq := make(Sequence, 0, remaining)
	for remaining > 0 {
		op, pi, pj := step(t, x, y, i, j)
		if debug {
			want := t.At(i, j)
			if op != Match {
				want--
			}
			if t.At(pi, pj) != want {
				panic(fmt.Sprintf("invariant violation: %v from (%d, %d) to (%d, %d)", op, i, j, pi, pj))
			}
		}
		i, j = pi, pj
		if op == Match {
			continue
		}
		seq = append(seq, op)
		remaining--
	}
	return seq
}

// candidate is a predecessor cell reachable by a single operation.
type candidate struct {
	op    Op
	valid bool
	cost  int
}

// choose returns the valid candidate with the lowest cost. Among equal costs, the one that comes
// first in cs wins.
func choose(cs []candidate) (Op, bool) {
	var best candidate
	found := false
	for _, c := range cs {
		if !c.valid {
			continue
		}
		if !found || c.cost < best.cost {
			best = c
			found = true
		}
	}
	return best.op, found
}

// step decides which operation leads into cell (i, j) and returns it together with the
// predecessor cell.
func step(t *Table, x, y []rune, i, j int) (Op, int, int) {
	if i > 0 && j > 0 && x[i-1] == y[j-1] {
		return Match, i - 1, j - 1
	}

	var cs [4]candidate
	cs[0] = candidate{op: Replace, valid: i > 0 && j > 0}
	if cs[0].valid {
		cs[0].cost = t.At(i-1, j-1)
	}
	cs[1] = candidate{op: Transpose, valid: transposable(x, y, i, j)}
	if cs[1].valid {
		cs[1].cost = t.At(i-2, j-2)
	}
	cs[2] = candidate{op: Insert, valid: j > 0}
	if cs[2].valid {
		cs[2].cost = t.At(i, j-1)
	}
	cs[3] = candidate{op: Delete, valid: i > 0}
	if cs[3].valid {
		cs[3].cost = t.At(i-1, j)
	}

	op, ok := choose(cs[:])
	if !ok {
		panic(fmt.Sprintf("no predecessor for cell (%d, %d)", i, j))
	}
	pi, pj := predecessor(op, i, j)
	return op, pi, pj
}

func predecessor(op Op, i, j int) (int, int) {
	switch op {
	case Match, Replace:
		return i - 1, j - 1
	case Transpose:
		return i - 2, j - 2
	case Insert:
		return i, j - 1
	case Delete:
		return i - 1, j
	}
	panic(fmt.Sprintf("unknown operation %v", op))
}

// transposable reports whether the last two characters of x[:i] are those of y[:j] swapped.
func transposable(x, y []rune, i, j int) bool {
	return i >= 2 && j >= 2 && x[i-1] == y[j-2] && x[i-2] == y[j-1]
}
