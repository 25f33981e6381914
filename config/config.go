// Package config loads server settings from the environment and an
// optional wordmines.yaml file. Environment variables win and are
// prefixed WORDMINES_, so WORDMINES_NATS_URL sets nats_url.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved server configuration.
type Config struct {
	// LexiconPath points at a newline-separated word list. Empty
	// accepts every word, which is only useful for development.
	LexiconPath string
	// LexiconName labels the loaded word list.
	LexiconName string
	// StatsPath is the SQLite file for player statistics. Empty keeps
	// statistics in memory.
	StatsPath string
	// NATSURL is the message bus address. Empty disables bus
	// notifications.
	NATSURL string
	// SweepInterval is how often the turn-clock sweep runs.
	SweepInterval time.Duration
	Debug         bool
}

// Load reads the configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("lexicon_path", "")
	v.SetDefault("lexicon_name", "TDK")
	v.SetDefault("stats_path", "")
	v.SetDefault("nats_url", "")
	v.SetDefault("sweep_interval", 5*time.Second)
	v.SetDefault("debug", false)

	v.SetConfigName("wordmines")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	v.SetEnvPrefix("wordmines")
	v.AutomaticEnv()

	return &Config{
		LexiconPath:   v.GetString("lexicon_path"),
		LexiconName:   v.GetString("lexicon_name"),
		StatsPath:     v.GetString("stats_path"),
		NATSURL:       v.GetString("nats_url"),
		SweepInterval: v.GetDuration("sweep_interval"),
		Debug:         v.GetBool("debug"),
	}, nil
}
