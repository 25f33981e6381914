package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/woquz/wordmines/config"
	"github.com/woquz/wordmines/engine"
	"github.com/woquz/wordmines/lexicon"
	"github.com/woquz/wordmines/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var lex lexicon.Lexicon = lexicon.AcceptAll{}
	if cfg.LexiconPath != "" {
		set, err := lexicon.LoadFile(cfg.LexiconName, cfg.LexiconPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LexiconPath).
				Msg("could not load word list")
		}
		lex = set
	} else {
		log.Warn().Msg("no word list configured; every word will be accepted")
	}

	var store stats.Store = stats.NewMemoryStore()
	if cfg.StatsPath != "" {
		sq, err := stats.OpenSQLite(cfg.StatsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.StatsPath).
				Msg("could not open statistics database")
		}
		defer sq.Close()
		store = sq
	}

	var notifier engine.Notifier
	if cfg.NATSURL != "" {
		nn, err := engine.NewNATSNotifier(cfg.NATSURL)
		if err != nil {
			log.Fatal().Err(err).Str("url", cfg.NATSURL).
				Msg("could not connect to message bus")
		}
		defer nn.Close()
		notifier = nn
	}

	e := engine.New(lex, store, notifier)
	sched, err := e.StartSweeper(cfg.SweepInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start turn-clock sweeper")
	}

	log.Info().Str("lexicon", lex.Name()).
		Dur("sweep_interval", cfg.SweepInterval).
		Msg("wordmines engine running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("got quit signal...")
	if err := sched.Shutdown(); err != nil {
		log.Error().Err(err).Msg("sweeper shutdown")
	}
	log.Info().Msg("server gracefully shutting down")
}
