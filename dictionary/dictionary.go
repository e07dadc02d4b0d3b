// Package dictionary loads word lists.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// ErrEmpty is returned when a word list does not contain a single word.
var ErrEmpty = errors.New("dictionary is empty")

// Dictionary is an immutable set of words.
type Dictionary struct {
	words []string // sorted, without duplicates
	index map[string]struct{}
}

// New creates a dictionary from words. Duplicates are collapsed; words are kept as they are, no
// case folding or normalization happens.
func New(words []string) *Dictionary {
	d := &Dictionary{
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = struct{}{}
		d.words = append(d.words, w)
	}
	slices.Sort(d.words)
	return d
}

// Load reads a dictionary from a file, see Read for the format.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %s: %v", path, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %s: %w", path, err)
	}
	return d, nil
}

// Read reads a dictionary with one word per line. Surrounding whitespace is trimmed, blank lines
// and lines starting with '#' are skipped.
func Read(r io.Reader) (*Dictionary, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %v", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return New(words), nil
}

// Words returns a sorted copy of all words.
func (d *Dictionary) Words() []string { return slices.Clone(d.words) }

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[w]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }
