// Package game runs games of distle: a player guesses a secret word from a dictionary and, after
// every wrong guess, is told the edit distance and the sequence of operations that turns the guess
// into the secret.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"znkr.io/distle/dictionary"
	"znkr.io/distle/edit"
)

var (
	// ErrUnknownSecret is returned when the secret is not part of the dictionary.
	ErrUnknownSecret = errors.New("secret is not in the dictionary")

	// ErrEmptyDictionary is returned when a secret should be picked from an empty dictionary.
	ErrEmptyDictionary = errors.New("dictionary is empty")
)

// Player is anything that can play a game, typically a *guesser.Guesser.
type Player interface {
	StartNewGame(dictionary []string)
	NextGuess() (string, error)
	ApplyFeedback(guess string, feedback edit.Sequence) error
}

// Turn is a single guess and the feedback given for it.
type Turn struct {
	Guess    string        `json:"guess"`
	Distance int           `json:"distance"`
	Feedback edit.Sequence `json:"feedback"`
}

// Result is the outcome of a game.
type Result struct {
	ID         string    `json:"id"`
	Secret     string    `json:"secret"`
	Won        bool      `json:"won"`
	MaxGuesses int       `json:"max_guesses"`
	Turns      []Turn    `json:"turns"`
	Played     time.Time `json:"played"`
}

// Guesses returns the number of guesses made.
func (r *Result) Guesses() int { return len(r.Turns) }

// RandomSecret picks a secret uniformly from words.
func RandomSecret(words []string, r *rand.Rand) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyDictionary
	}
	return words[r.IntN(len(words))], nil
}

// Game holds everything needed to play games.
type Game struct {
	Dictionary *dictionary.Dictionary
	MaxGuesses int
	Player     Player
	Logger     *zap.Logger // optional
	Out        io.Writer   // optional, receives a human readable transcript
}

// Play plays a single game against secret. The game ends when the player finds the secret or runs
// out of guesses. Errors returned by the player end the game early.
func (g *Game) Play(ctx context.Context, secret string) (*Result, error) {
	if !g.Dictionary.Contains(secret) {
		return nil, fmt.Errorf("playing %q: %w", secret, ErrUnknownSecret)
	}
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := newPrinter(g.Out)

	res := &Result{
		ID:         uuid.NewString(),
		Secret:     secret,
		MaxGuesses: g.MaxGuesses,
		Played:     time.Now(),
	}
	log = log.With(zap.String("game", res.ID))

	g.Player.StartNewGame(g.Dictionary.Words())
	for n := 1; n <= g.MaxGuesses; n++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		guess, err := g.Player.NextGuess()
		if err != nil {
			return res, fmt.Errorf("guess %d: %w", n, err)
		}

		cmp := edit.Compare(guess, secret)
		turn := Turn{
			Guess:    guess,
			Distance: cmp.Distance,
			Feedback: cmp.Sequence,
		}
		res.Turns = append(res.Turns, turn)
		out.turn(n, turn)
		log.Debug("turn",
			zap.Int("n", n),
			zap.String("guess", guess),
			zap.Int("distance", turn.Distance),
			zap.Stringer("feedback", turn.Feedback))

		if turn.Distance == 0 {
			res.Won = true
			break
		}
		if err := g.Player.ApplyFeedback(guess, turn.Feedback); err != nil {
			return res, fmt.Errorf("feedback for guess %d: %w", n, err)
		}
	}

	out.result(res)
	log.Info("game over",
		zap.Bool("won", res.Won),
		zap.Int("guesses", res.Guesses()))
	return res, nil
}
