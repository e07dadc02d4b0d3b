package edit

import (
	"fmt"
	"slices"
)

// Sequence is a top-down list of Replace, Transpose, Insert and Delete operations.
//
// Sequences are text encoded as their letter tags, e.g. "RTI".
type Sequence []Op

// Equal reports whether s and other contain the same operations in the same order.
func (s Sequence) Equal(other Sequence) bool {
	return slices.Equal(s, other)
}

func (s Sequence) String() string {
	b, _ := s.MarshalText()
	return string(b)
}

// Counts returns how often each operation occurs in s.
func (s Sequence) Counts() map[Op]int {
	counts := make(map[Op]int)
	for _, op := range s {
		counts[op]++
	}
	return counts
}

// MarshalText implements encoding.TextMarshaler.
func (s Sequence) MarshalText() ([]byte, error) {
	b := make([]byte, 0, len(s))
	for _, op := range s {
		b = append(b, op.Letter())
	}
	return b, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sequence) UnmarshalText(text []byte) error {
	seq, err := ParseSequence(string(text))
	if err != nil {
		return err
	}
	*s = seq
	return nil
}

// ParseSequence parses a sequence of letter tags. Spaces and commas between tags are ignored, so
// "RTI", "R T I" and "R,T,I" are all the same sequence. Match is not allowed.
func ParseSequence(in string) (Sequence, error) {
	seq := Sequence{}
	for i := range len(in) {
		switch in[i] {
		case ' ', ',', '\t':
			continue
		}
		op, err := ParseOp(in[i])
		if err != nil {
			return nil, fmt.Errorf("parsing sequence %q: %v", in, err)
		}
		if op == Match {
			return nil, fmt.Errorf("parsing sequence %q: match is not an emitted operation", in)
		}
		seq = append(seq, op)
	}
	return seq, nil
}
