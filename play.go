package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"znkr.io/distle/dictionary"
	"znkr.io/distle/game"
	"znkr.io/distle/guesser"
	"znkr.io/distle/report"
	"znkr.io/distle/stats"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one or more games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		dict, err := dictionary.Load(cfg.Dictionary)
		if err != nil {
			return err
		}
		logger.Debug("dictionary loaded", zap.String("path", cfg.Dictionary), zap.Int("words", dict.Len()))

		seed, _ := cmd.Flags().GetUint64("seed")
		rng := newRand(seed)

		var out io.Writer
		if cfg.Verbose || !cfg.AIPlayer {
			out = cmd.OutOrStdout()
		}

		var player game.Player
		if cfg.AIPlayer {
			player = guesser.New(
				guesser.WithRand(rng),
				guesser.WithLogger(logger),
				guesser.WithWorkers(cfg.Workers),
			)
		} else {
			player = game.NewHumanPlayer(cmd.InOrStdin(), cmd.OutOrStdout())
		}

		show := &game.Show{
			Game: &game.Game{
				Dictionary: dict,
				MaxGuesses: cfg.MaxGuesses,
				Player:     player,
				Logger:     logger,
				Out:        out,
			},
			Games:  cfg.Games,
			Secret: cfg.Secret,
			Rand:   rng,
		}

		if cfg.StatsDir != "" {
			store, err := stats.Open(cfg.StatsDir, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			show.Recorder = store
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		results, err := show.Run(ctx)
		if err != nil {
			return err
		}
		logger.Info("session finished", zap.Int("games", len(results)), zap.Int("wins", game.Wins(results)))

		if path, _ := cmd.Flags().GetString("report"); path != "" {
			return writeReports(path, results)
		}
		return nil
	},
}

func init() {
	fs := playCmd.Flags()
	fs.String("dict", "", "dictionary file, one word per line")
	fs.Int("games", 0, "number of games to play")
	fs.Int("max-guesses", 0, "guesses per game")
	fs.String("secret", "", "secret word for every game, random if empty")
	fs.Bool("human", false, "guess yourself instead of letting the computer guess")
	fs.Bool("quiet", false, "only print errors")
	fs.Int("workers", 0, "goroutines used to filter candidates")
	fs.String("stats-dir", "", "directory to record played games in")
	fs.String("report", "", "write an HTML transcript to this file")
	fs.Uint64("seed", 0, "random seed, 0 picks one")
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// writeReports writes one transcript per game. With more than one game, the game number is added
// before the file extension.
func writeReports(path string, results []*game.Result) error {
	for i, res := range results {
		b, err := report.HTML(res)
		if err != nil {
			return fmt.Errorf("rendering report: %v", err)
		}
		name := path
		if len(results) > 1 {
			ext := filepath.Ext(path)
			name = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
		}
		if err := os.WriteFile(name, b, 0644); err != nil {
			return fmt.Errorf("writing report: %v", err)
		}
	}
	return nil
}
