// Package guesser implements a player that narrows down a dictionary to the words consistent with
// all feedback it received.
//
// After every wrong guess, the player is told the sequence of operations that turns the guess into
// the secret word (see [edit.Reconstruct]). A candidate survives iff reconstructing the sequence
// from the guess to the candidate yields exactly the same sequence. The secret always survives, so
// the candidate set shrinks towards it.
package guesser

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"znkr.io/distle/edit"
)

var (
	// ErrNoCandidates is returned by NextGuess when feedback eliminated every word. This can only
	// happen if the feedback was inconsistent or the secret is not part of the dictionary.
	ErrNoCandidates = errors.New("no candidates remain")

	// ErrOutOfTurn is returned when NextGuess and ApplyFeedback are not called alternately.
	ErrOutOfTurn = errors.New("out of turn")
)

// DefaultOpenings are the preferred opening words, in order of preference.
var DefaultOpenings = []string{"abstrusenesses", "mysterious"}

// FallbackOpening is used if none of the openings is in the dictionary.
const FallbackOpening = "slater"

const defaultLength = 5

// State describes what the guesser expects next.
type State int

const (
	AwaitingGuess    State = iota // NextGuess is expected
	AwaitingFeedback              // ApplyFeedback is expected
)

func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "AwaitingGuess"
	case AwaitingFeedback:
		return "AwaitingFeedback"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Guesser plays one game at a time. It's not safe for concurrent use.
type Guesser struct {
	rng      *rand.Rand
	log      *zap.Logger
	workers  int
	openings []string

	candidates []string // sorted, replaced on every feedback
	tried      map[string]bool
	opening    string
	guesses    int
	length     int
	state      State
}

// Option configures a Guesser.
type Option func(*Guesser)

// WithRand sets the source of randomness used to pick guesses.
func WithRand(r *rand.Rand) Option {
	return func(g *Guesser) { g.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Guesser) { g.log = l }
}

// WithWorkers sets the number of goroutines used to test candidates against feedback.
func WithWorkers(n int) Option {
	return func(g *Guesser) { g.workers = max(n, 1) }
}

// WithOpenings replaces the preferred opening words.
func WithOpenings(words ...string) Option {
	return func(g *Guesser) { g.openings = slices.Clone(words) }
}

// New creates a new guesser. StartNewGame must be called before the first guess.
func New(opts ...Option) *Guesser {
	g := &Guesser{
		log:      zap.NewNop(),
		workers:  1,
		openings: DefaultOpenings,
		tried:    make(map[string]bool),
		length:   defaultLength,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// StartNewGame resets all state and makes every word of dictionary a candidate.
func (g *Guesser) StartNewGame(dictionary []string) {
	candidates := slices.Clone(dictionary)
	slices.Sort(candidates)
	g.candidates = slices.Compact(candidates)
	g.tried = make(map[string]bool)
	g.guesses = 0
	g.length = defaultLength
	g.state = AwaitingGuess

	g.opening = FallbackOpening
	for _, w := range g.openings {
		if _, found := slices.BinarySearch(g.candidates, w); found {
			g.opening = w
			break
		}
	}
	g.log.Debug("new game",
		zap.Int("candidates", len(g.candidates)),
		zap.String("opening", g.opening))
}

// NextGuess returns the next word to guess. The first guess of a game is always the opening word,
// all later guesses are drawn uniformly from the candidates that have not been tried yet.
func (g *Guesser) NextGuess() (string, error) {
	if g.state != AwaitingGuess {
		return "", fmt.Errorf("guessing while %v: %w", g.state, ErrOutOfTurn)
	}

	var guess string
	if g.guesses == 0 {
		guess = g.opening
	} else {
		untried := make([]string, 0, len(g.candidates))
		for _, w := range g.candidates {
			if !g.tried[w] {
				untried = append(untried, w)
			}
		}
		if len(untried) == 0 {
			return "", ErrNoCandidates
		}
		guess = untried[g.rng.IntN(len(untried))]
	}

	g.guesses++
	g.tried[guess] = true
	g.state = AwaitingFeedback
	return guess, nil
}

// ApplyFeedback removes every candidate whose sequence from guess differs from feedback. Words
// that were already guessed are removed as well.
func (g *Guesser) ApplyFeedback(guess string, feedback edit.Sequence) error {
	if g.state != AwaitingFeedback {
		return fmt.Errorf("feedback while %v: %w", g.state, ErrOutOfTurn)
	}

	for _, op := range feedback {
		switch op {
		case edit.Insert:
			g.length++
		case edit.Delete:
			g.length--
		}
	}

	before := len(g.candidates)
	g.candidates = g.filter(guess, feedback)
	g.state = AwaitingGuess

	g.log.Debug("applied feedback",
		zap.String("guess", guess),
		zap.Stringer("feedback", feedback),
		zap.Int("before", before),
		zap.Int("after", len(g.candidates)),
		zap.Int("length_estimate", g.length))
	return nil
}

// filter returns the candidates consistent with the feedback for guess. The result is a new slice,
// g.candidates is left untouched.
func (g *Guesser) filter(guess string, feedback edit.Sequence) []string {
	keep := make([]bool, len(g.candidates))
	check := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			w := g.candidates[i]
			keep[i] = !g.tried[w] && edit.Reconstruct(guess, w).Equal(feedback)
		}
	}

	if g.workers <= 1 || len(keep) < 2*g.workers {
		check(0, len(keep))
	} else {
		var eg errgroup.Group
		chunk := (len(keep) + g.workers - 1) / g.workers
		for lo := 0; lo < len(keep); lo += chunk {
			hi := min(lo+chunk, len(keep))
			eg.Go(func() error {
				check(lo, hi)
				return nil
			})
		}
		eg.Wait()
	}

	var next []string
	for i, ok := range keep {
		if ok {
			next = append(next, g.candidates[i])
		}
	}
	return next
}

// Candidates returns a sorted copy of the remaining candidates.
func (g *Guesser) Candidates() []string { return slices.Clone(g.candidates) }

// Tried returns the words guessed in this game, sorted.
func (g *Guesser) Tried() []string {
	var ret []string
	for w := range g.tried {
		ret = append(ret, w)
	}
	slices.Sort(ret)
	return ret
}

// LengthEstimate returns the running estimate of the secret's length. It starts at 5 and moves by
// one for every insertion (up) and deletion (down) seen in feedback. It's informational only and
// plays no role in filtering.
func (g *Guesser) LengthEstimate() int { return g.length }

// State returns what the guesser expects next.
func (g *Guesser) State() State { return g.state }
