package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"znkr.io/distle/edit"
)

// HumanPlayer lets a person play by typing guesses. Feedback is not printed by the player itself,
// pair it with a Game that has Out set.
type HumanPlayer struct {
	in    *bufio.Scanner
	out   io.Writer
	words map[string]bool
}

// NewHumanPlayer creates a player reading guesses from in, one per line, and writing prompts to
// out.
func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// StartNewGame implements Player.
func (p *HumanPlayer) StartNewGame(dictionary []string) {
	p.words = make(map[string]bool, len(dictionary))
	for _, w := range dictionary {
		p.words[w] = true
	}
	fmt.Fprintf(p.out, "Guess the word, it's one of %d.\n", len(dictionary))
}

// NextGuess implements Player. Blank lines are ignored and words that are not in the dictionary
// are rejected until a valid word is entered.
func (p *HumanPlayer) NextGuess() (string, error) {
	for {
		fmt.Fprint(p.out, "guess> ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("reading guess: %v", err)
			}
			return "", io.ErrUnexpectedEOF
		}
		guess := strings.TrimSpace(p.in.Text())
		switch {
		case guess == "":
			continue
		case !p.words[guess]:
			fmt.Fprintf(p.out, "%q is not in the dictionary\n", guess)
			continue
		}
		return guess, nil
	}
}

// ApplyFeedback implements Player.
func (p *HumanPlayer) ApplyFeedback(string, edit.Sequence) error { return nil }
