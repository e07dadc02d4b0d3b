package edit

import (
	"fmt"
	"strings"
)

// Table stores the edit distances between all prefixes of two strings. The cell (i, j) holds the
// distance between the first i characters of s0 and the first j characters of s1. The table is
// stored in a flat slice, row by row.
type Table struct {
	rows, cols int
	v          []int
}

// NewTable builds the distance table for s0 and s1.
func NewTable(s0, s1 string) *Table {
	return newTable([]rune(s0), []rune(s1))
}

func newTable(x, y []rune) *Table {
	t := &Table{
		rows: len(x) + 1,
		cols: len(y) + 1,
	}
	t.v = make([]int, t.rows*t.cols)

	for i := range t.rows {
		t.set(i, 0, i)
	}
	for j := range t.cols {
		t.set(0, j, j)
	}

	for i := 1; i < t.rows; i++ {
		for j := 1; j < t.cols; j++ {
			if x[i-1] == y[j-1] {
				t.set(i, j, t.At(i-1, j-1))
				continue
			}
			d := t.At(i-1, j-1)
			if transposable(x, y, i, j) {
				d = min(d, t.At(i-2, j-2))
			}
			d = min(d, t.At(i, j-1), t.At(i-1, j))
			t.set(i, j, d+1)
		}
	}
	return t
}

// At returns the value of cell (i, j).
func (t *Table) At(i, j int) int { return t.v[t.index(i, j)] }

func (t *Table) set(i, j, v int) { t.v[t.index(i, j)] = v }

func (t *Table) index(i, j int) int {
	if debug {
		if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
			panic(fmt.Sprintf("cell (%d, %d) outside of %dx%d table", i, j, t.rows, t.cols))
		}
	}
	return i*t.cols + j
}

// Rows returns the number of rows, len(s0)+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns, len(s1)+1.
func (t *Table) Cols() int { return t.cols }

// Distance returns the value of the bottom right cell, the edit distance of s0 and s1.
func (t *Table) Distance() int { return t.At(t.rows-1, t.cols-1) }

// String renders the table as a grid, mostly useful for debugging.
func (t *Table) String() string {
	var sb strings.Builder
	for i := range t.rows {
		for j := range t.cols {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%2d", t.At(i, j))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
