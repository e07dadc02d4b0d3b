package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"znkr.io/distle/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics of recorded games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cfg.StatsDir == "" {
			return errors.New("no stats directory, use --stats-dir or set stats_dir in the config")
		}
		store, err := stats.Open(cfg.StatsDir, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		w := cmd.OutOrStdout()
		if list, _ := cmd.Flags().GetBool("list"); list {
			recs, err := store.Records()
			if err != nil {
				return err
			}
			for _, r := range recs {
				status := "lost"
				if r.Won {
					status = "won"
				}
				fmt.Fprintf(w, "%s  %s  %-4s  %2d guesses  %s\n",
					r.Played.Format("2006-01-02 15:04"), r.ID, status, r.Guesses, r.Secret)
			}
		}

		sum, err := store.Summary()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "games    %d\n", sum.Games)
		fmt.Fprintf(w, "won      %d\n", sum.Wins)
		if sum.Wins > 0 {
			fmt.Fprintf(w, "average  %.2f guesses\n", sum.AverageGuesses)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("stats-dir", "", "directory games were recorded in")
	statsCmd.Flags().Bool("list", false, "list every recorded game")
}
