package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Recorder stores finished games.
type Recorder interface {
	Record(res *Result) error
}

// Show plays a number of games in a row.
type Show struct {
	Game     *Game
	Games    int
	Secret   string     // empty picks a random secret for every game
	Rand     *rand.Rand // used to pick secrets
	Recorder Recorder   // optional
}

// Run plays all games and returns their results. It stops at the first error.
func (s *Show) Run(ctx context.Context) ([]*Result, error) {
	out := newPrinter(s.Game.Out)
	var results []*Result
	wins := 0
	for n := range s.Games {
		secret := s.Secret
		if secret == "" {
			var err error
			secret, err = RandomSecret(s.Game.Dictionary.Words(), s.Rand)
			if err != nil {
				return results, err
			}
		}

		out.printf("[!] Game starting: %d / %d\n", n+1, s.Games)
		res, err := s.Game.Play(ctx, secret)
		if err != nil {
			return results, fmt.Errorf("game %d: %w", n+1, err)
		}
		results = append(results, res)
		if res.Won {
			wins++
		}

		if s.Recorder != nil {
			if err := s.Recorder.Record(res); err != nil {
				if s.Game.Logger != nil {
					s.Game.Logger.Warn("recording game failed", zap.String("game", res.ID), zap.Error(err))
				}
			}
		}
	}

	out.printf("=================================\n")
	out.printf("= Won: %d / %d\n", wins, s.Games)
	out.printf("=================================\n")
	return results, nil
}

// Wins counts the games won.
func Wins(results []*Result) int {
	n := 0
	for _, r := range results {
		if r.Won {
			n++
		}
	}
	return n
}
