package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"znkr.io/distle/dictionary"
	"znkr.io/distle/server"
	"znkr.io/distle/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game via HTTP, reloading the dictionary when it changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		path, err := filepath.Abs(cfg.Dictionary)
		if err != nil {
			return fmt.Errorf("resolving dictionary path: %v", err)
		}
		dict, err := dictionary.Load(path)
		if err != nil {
			return err
		}

		strict, _ := cmd.Flags().GetBool("strict")
		opts := []server.Option{
			server.WithLogger(logger),
			server.WithMaxGuesses(cfg.MaxGuesses),
			server.WithStrictGuesses(strict),
		}
		if cfg.StatsDir != "" {
			store, err := stats.Open(cfg.StatsDir, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			opts = append(opts, server.WithRecorder(store))
		}

		// Start serving.
		srv, err := server.Run(cfg.Addr, dict, opts...)
		if err != nil {
			return err
		}
		defer srv.Shutdown(context.Background())
		logger.Info("now serving, press Ctrl-C to shut down",
			zap.Stringer("addr", srv.Addr()),
			zap.Int("words", dict.Len()))

		// Editors often replace files instead of writing them, watch the directory to see those
		// changes too.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting watcher: %v", err)
		}
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("starting watch: %v", err)
		}
		logger.Info("watching dictionary", zap.String("path", path))

		// Setup signals to react to Ctrl-C.
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)

		for {
			select {
			case event := <-watcher.Events:
				if filepath.Clean(event.Name) != path || event.Has(fsnotify.Chmod) {
					continue
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					logger.Warn("dictionary is gone, keeping the loaded one", zap.String("path", path))
					continue
				}

				start := time.Now()
				d, err := dictionary.Load(path)
				if err != nil {
					logger.Warn("failed to reload dictionary", zap.Error(err))
					continue
				}
				srv.ReplaceDictionary(d)
				logger.Info("dictionary reloaded",
					zap.Int("words", d.Len()),
					zap.Duration("took", time.Since(start)))
			case err := <-watcher.Errors:
				return fmt.Errorf("watching: %v", err)
			case err, ok := <-srv.Error():
				if ok {
					return fmt.Errorf("serving: %v", err)
				}
				return nil
			case <-sigint:
				fmt.Print("\r") // remove Ctrl-C output characters
				logger.Info("received Ctrl-C, shutting down")
				return nil
			}
		}
	},
}

func init() {
	fs := serveCmd.Flags()
	fs.String("dict", "", "dictionary file, one word per line")
	fs.String("addr", "", "address to listen on")
	fs.Int("max-guesses", 0, "guesses per game")
	fs.String("stats-dir", "", "directory to record finished games in")
	fs.Bool("strict", false, "reject guesses that are not in the dictionary")
}
