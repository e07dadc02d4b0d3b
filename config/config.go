// Package config holds the configuration of distle.
//
// Configuration is layered: built-in defaults, then a YAML file, then a .env file, then DISTLE_*
// environment variables. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration.
type Config struct {
	Dictionary string        `yaml:"dictionary"`
	MaxGuesses int           `yaml:"max_guesses"`
	Games      int           `yaml:"games"`
	Secret     string        `yaml:"secret"` // empty picks a random word per game
	Verbose    bool          `yaml:"verbose"`
	AIPlayer   bool          `yaml:"ai_player"`
	Workers    int           `yaml:"workers"`
	StatsDir   string        `yaml:"stats_dir"` // empty disables stats
	Addr       string        `yaml:"addr"`
	Logging    LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dictionary: "dictionary.txt",
		MaxGuesses: 10,
		Games:      1,
		Verbose:    true,
		AIPlayer:   true,
		Workers:    1,
		Addr:       "localhost:8080",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads the configuration from the YAML file at path. A missing file is not an error, the
// defaults are used instead. An empty path skips the file. Afterwards, envFile (if it exists) is
// loaded into the environment and environment overrides are applied.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %v", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults it is
		default:
			return nil, fmt.Errorf("reading config: %v", err)
		}
	}

	if envFile != "" {
		// Variables already present in the environment take precedence over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %v", envFile, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %v", key, err)
		}
		*dst = n
		return nil
	}
	boolean := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %v", key, err)
		}
		*dst = b
		return nil
	}

	str("DISTLE_DICTIONARY", &c.Dictionary)
	str("DISTLE_SECRET", &c.Secret)
	str("DISTLE_STATS_DIR", &c.StatsDir)
	str("DISTLE_ADDR", &c.Addr)
	str("DISTLE_LOG_LEVEL", &c.Logging.Level)
	str("DISTLE_LOG_FORMAT", &c.Logging.Format)
	return errors.Join(
		num("DISTLE_MAX_GUESSES", &c.MaxGuesses),
		num("DISTLE_GAMES", &c.Games),
		num("DISTLE_WORKERS", &c.Workers),
		boolean("DISTLE_VERBOSE", &c.Verbose),
		boolean("DISTLE_AI_PLAYER", &c.AIPlayer),
	)
}

// Validate checks the configuration for values that can't work.
func (c *Config) Validate() error {
	var errs []error
	if c.Dictionary == "" {
		errs = append(errs, errors.New("dictionary must be set"))
	}
	if c.MaxGuesses <= 0 {
		errs = append(errs, fmt.Errorf("max_guesses must be positive, got %d", c.MaxGuesses))
	}
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
