package report

import (
	"strings"

	"znkr.io/diff"
)

// Alignment renders a character alignment of x and y as three lines: x, y, and a marker line that
// has '=' for matching characters, '-' for characters only in x and '+' for characters only in y.
// Gaps are filled with spaces.
//
// The alignment is a longest common subsequence diff, it only knows insertions and deletions and is
// meant as a visual aid next to an edit sequence.
func Alignment(x, y string) string {
	edits := diff.Edits([]rune(x), []rune(y))

	var top, bottom, marks strings.Builder
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			top.WriteRune(e.X)
			bottom.WriteRune(e.Y)
			marks.WriteByte('=')
		case diff.Delete:
			top.WriteRune(e.X)
			bottom.WriteByte(' ')
			marks.WriteByte('-')
		case diff.Insert:
			top.WriteByte(' ')
			bottom.WriteRune(e.Y)
			marks.WriteByte('+')
		}
	}
	return top.String() + "\n" + bottom.String() + "\n" + marks.String() + "\n"
}
