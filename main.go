// Command distle plays a word guessing game where the only feedback for a guess is the edit
// sequence that turns it into the secret word.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"znkr.io/distle/config"
	"znkr.io/distle/logging"
)

var (
	configPath string
	envFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "distle [command]",
		Short:        "Word guessing game driven by edit distances",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "distle.yaml", "configuration file, ignored if missing")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with DISTLE_* variables, ignored if missing")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, overrides it with the flags set on cmd and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %v", err)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}
	var err error
	str := func(name string, dst *string) {
		if changed(name) && err == nil {
			*dst, err = fs.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if changed(name) && err == nil {
			*dst, err = fs.GetInt(name)
		}
	}
	not := func(name string, dst *bool) {
		if changed(name) && err == nil {
			var v bool
			v, err = fs.GetBool(name)
			*dst = !v
		}
	}

	str("dict", &cfg.Dictionary)
	str("secret", &cfg.Secret)
	str("stats-dir", &cfg.StatsDir)
	str("addr", &cfg.Addr)
	str("log-level", &cfg.Logging.Level)
	str("log-format", &cfg.Logging.Format)
	num("games", &cfg.Games)
	num("max-guesses", &cfg.MaxGuesses)
	num("workers", &cfg.Workers)
	not("quiet", &cfg.Verbose)
	not("human", &cfg.AIPlayer)
	if err != nil {
		return fmt.Errorf("reading flags: %v", err)
	}
	return nil
}
