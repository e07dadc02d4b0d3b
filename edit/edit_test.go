package edit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name     string
		s0, s1   string
		distance int
		want     Sequence
	}{
		{
			name: "empty",
			want: Sequence{},
		},
		{
			name: "identical",
			s0:   "slater",
			s1:   "slater",
			want: Sequence{},
		},
		{
			name:     "s0-empty",
			s1:       "cat",
			distance: 3,
			want:     Sequence{Insert, Insert, Insert},
		},
		{
			name:     "s1-empty",
			s0:       "cat",
			distance: 3,
			want:     Sequence{Delete, Delete, Delete},
		},
		{
			name:     "append",
			s0:       "cat",
			s1:       "cats",
			distance: 1,
			want:     Sequence{Insert},
		},
		{
			name:     "swap",
			s0:       "ab",
			s1:       "ba",
			distance: 1,
			want:     Sequence{Transpose},
		},
		{
			name:     "swap-at-end",
			s0:       "abc",
			s1:       "acb",
			distance: 1,
			want:     Sequence{Transpose},
		},
		{
			name:     "three-swaps",
			s0:       "abcdef",
			s1:       "badcfe",
			distance: 3,
			want:     Sequence{Transpose, Transpose, Transpose},
		},
		{
			name:     "replace-in-the-middle",
			s0:       "slater",
			s1:       "skater",
			distance: 1,
			want:     Sequence{Replace},
		},
		{
			name:     "replace-at-end",
			s0:       "slater",
			s1:       "slated",
			distance: 1,
			want:     Sequence{Replace},
		},
		{
			name:     "replace-twice",
			s0:       "slater",
			s1:       "crater",
			distance: 2,
			want:     Sequence{Replace, Replace},
		},
		{
			// Replace and Delete tie at (2, 1).
			name:     "replace-before-delete",
			s0:       "ab",
			s1:       "c",
			distance: 2,
			want:     Sequence{Replace, Delete},
		},
		{
			// Replace and Insert tie at (1, 2).
			name:     "replace-before-insert",
			s0:       "c",
			s1:       "ab",
			distance: 2,
			want:     Sequence{Replace, Insert},
		},
		{
			name:     "runes",
			s0:       "naïve",
			s1:       "naive",
			distance: 1,
			want:     Sequence{Replace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.s0, tt.s1); got != tt.distance {
				t.Errorf("Distance(%q, %q)=%d; want=%d", tt.s0, tt.s1, got, tt.distance)
			}
			got := Reconstruct(tt.s0, tt.s1)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Reconstruct(%q, %q) is different (-want, +got):\n%s", tt.s0, tt.s1, diff)
			}
			res := Compare(tt.s0, tt.s1)
			if diff := cmp.Diff(Result{tt.distance, tt.want}, res); diff != "" {
				t.Errorf("Compare(%q, %q) is different (-want, +got):\n%s", tt.s0, tt.s1, diff)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	for _, tc := range []struct {
		s0, s1 string
		want   int
	}{
		{"", "", 0},
		{"", "cat", 3},
		{"cat", "cats", 1},
		{"ab", "ba", 1},
		{"kitten", "sitting", 3},
		{"chrome", "chorme", 1},
		{"ca", "abc", 3},
	} {
		got := Distance(tc.s0, tc.s1)
		if got != tc.want {
			t.Errorf("Distance(%q, %q)=%d; want=%d", tc.s0, tc.s1, got, tc.want)
		}
	}
}

var words = []string{
	"", "a", "ab", "ba", "abc", "acb", "cab", "cat", "cats", "act", "tac",
	"slater", "skater", "crater", "slated", "kitten", "sitting", "mysterious",
	"abstrusenesses", "aabb", "abab", "baba", "naïve", "naive",
}

func TestProperties(t *testing.T) {
	for _, s0 := range words {
		if d := Distance(s0, s0); d != 0 {
			t.Errorf("Distance(%q, %q)=%d; want=0", s0, s0, d)
		}
		if seq := Reconstruct(s0, s0); len(seq) != 0 {
			t.Errorf("Reconstruct(%q, %q)=%v; want empty", s0, s0, seq)
		}

		for _, s1 := range words {
			d := Distance(s0, s1)

			// Only the distance is symmetric, the sequence depends on the direction.
			if r := Distance(s1, s0); d != r {
				t.Errorf("Distance(%q, %q)=%d but Distance(%q, %q)=%d", s0, s1, d, s1, s0, r)
			}

			seq := Reconstruct(s0, s1)
			if len(seq) != d {
				t.Errorf("len(Reconstruct(%q, %q))=%d; want=%d", s0, s1, len(seq), d)
			}
			if (len(seq) == 0) != (s0 == s1) {
				t.Errorf("Reconstruct(%q, %q)=%v; empty iff the strings are equal", s0, s1, seq)
			}
			for _, op := range seq {
				if op == Match {
					t.Errorf("Reconstruct(%q, %q)=%v contains a match", s0, s1, seq)
				}
			}

			tbl := NewTable(s0, s1)
			if got := ReconstructTable(tbl, s0, s1); !got.Equal(seq) {
				t.Errorf("ReconstructTable(%q, %q)=%v; want=%v", s0, s1, got, seq)
			}
		}
	}
}

func TestTable(t *testing.T) {
	tbl := NewTable("ab", "ba")
	want := " 0  1  2\n" +
		" 1  1  1\n" +
		" 2  1  1\n"
	if diff := cmp.Diff(want, tbl.String()); diff != "" {
		t.Errorf("table is different (-want, +got):\n%s", diff)
	}

	// Base cases are pure insertions and deletions.
	tbl = NewTable("slater", "cats")
	for i := range tbl.Rows() {
		if got := tbl.At(i, 0); got != i {
			t.Errorf("At(%d, 0)=%d; want=%d", i, got, i)
		}
	}
	for j := range tbl.Cols() {
		if got := tbl.At(0, j); got != j {
			t.Errorf("At(0, %d)=%d; want=%d", j, got, j)
		}
	}
}

func TestChoose(t *testing.T) {
	all := func(r, tr, i, d int) []candidate {
		return []candidate{
			{Replace, true, r},
			{Transpose, true, tr},
			{Insert, true, i},
			{Delete, true, d},
		}
	}

	tests := []struct {
		name string
		cs   []candidate
		want Op
	}{
		{"all-equal", all(1, 1, 1, 1), Replace},
		{"transpose-over-insert", all(2, 1, 1, 1), Transpose},
		{"insert-over-delete", all(2, 2, 1, 1), Insert},
		{"delete-lowest", all(2, 2, 2, 1), Delete},
		{"lowest-wins", all(3, 2, 0, 1), Insert},
		{
			name: "skip-invalid",
			cs: []candidate{
				{Replace, false, 0},
				{Transpose, false, 0},
				{Insert, true, 1},
				{Delete, true, 1},
			},
			want: Insert,
		},
		{
			name: "invalid-transpose-lower",
			cs: []candidate{
				{Replace, true, 2},
				{Transpose, false, 0},
				{Insert, true, 3},
				{Delete, true, 3},
			},
			want: Replace,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := choose(tt.cs)
			if !ok {
				t.Fatalf("choose found no candidate")
			}
			if got != tt.want {
				t.Errorf("choose()=%v; want=%v", got, tt.want)
			}
		})
	}

	if _, ok := choose([]candidate{{Replace, false, 0}, {Delete, false, 0}}); ok {
		t.Errorf("choose found a candidate among invalid ones")
	}
}

func TestStep(t *testing.T) {
	// A hand-built table where Replace and Transpose both lead to a cell with value 1 from (2, 2).
	x, y := []rune("ab"), []rune("ba")
	tbl := &Table{
		rows: 3,
		cols: 3,
		v: []int{
			1, 1, 2,
			1, 1, 2,
			2, 2, 2,
		},
	}

	op, i, j := step(tbl, x, y, 2, 2)
	if op != Replace || i != 1 || j != 1 {
		t.Errorf("step(2, 2)=(%v, %d, %d); want=(Replace, 1, 1)", op, i, j)
	}

	tbl.v[4] = 2 // (1, 1) is now more expensive than (0, 0)
	op, i, j = step(tbl, x, y, 2, 2)
	if op != Transpose || i != 0 || j != 0 {
		t.Errorf("step(2, 2)=(%v, %d, %d); want=(Transpose, 0, 0)", op, i, j)
	}

	// Matching characters never consume an operation.
	op, i, j = step(NewTable("ab", "cb"), []rune("ab"), []rune("cb"), 2, 2)
	if op != Match || i != 1 || j != 1 {
		t.Errorf("step(2, 2)=(%v, %d, %d); want=(Match, 1, 1)", op, i, j)
	}
}

func TestSequenceText(t *testing.T) {
	seq := Sequence{Replace, Transpose, Insert, Delete}
	if got, want := seq.String(), "RTID"; got != want {
		t.Errorf("String()=%q; want=%q", got, want)
	}

	for _, in := range []string{"RTID", "R T I D", "R,T,I,D"} {
		got, err := ParseSequence(in)
		if err != nil {
			t.Fatalf("ParseSequence(%q): unexpected error: %v", in, err)
		}
		if diff := cmp.Diff(seq, got); diff != "" {
			t.Errorf("ParseSequence(%q) is different (-want, +got):\n%s", in, diff)
		}
	}

	for _, in := range []string{"RX", "M", "r"} {
		if _, err := ParseSequence(in); err == nil {
			t.Errorf("ParseSequence(%q): expected error", in)
		}
	}

	counts := Sequence{Insert, Replace, Insert}.Counts()
	if diff := cmp.Diff(map[Op]int{Insert: 2, Replace: 1}, counts); diff != "" {
		t.Errorf("Counts() is different (-want, +got):\n%s", diff)
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{
		Match:     "Match",
		Replace:   "Replace",
		Transpose: "Transpose",
		Insert:    "Insert",
		Delete:    "Delete",
		Op(7):     "Op(7)",
	} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String()=%q; want=%q", int(op), got, want)
		}
	}
}
