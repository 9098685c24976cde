package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HellscythePT/discord-mercy-tracker/internal/bot"
	"github.com/HellscythePT/discord-mercy-tracker/internal/config"
	"github.com/HellscythePT/discord-mercy-tracker/internal/rules"
	"github.com/HellscythePT/discord-mercy-tracker/internal/store"
)

const rulesPollInterval = 30 * time.Second

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}

	registry := rules.NewRegistry(cfg.RulesFile)
	if err := registry.Load(); err != nil {
		log.Fatal().Err(err).Msg("load mercy rules")
	}

	var watcher *rules.Watcher
	if cfg.RulesFile != "" {
		watcher = rules.NewWatcher(cfg.RulesFile, rulesPollInterval, func() {
			if err := registry.Load(); err != nil {
				log.Warn().Err(err).Msg("rules reload failed, keeping previous table")
				return
			}
			log.Info().Str("file", cfg.RulesFile).Msg("mercy rules reloaded")
		})
		watcher.Start()
	}

	st := store.Open(cfg.DataFile)

	b, err := bot.New(cfg.Token, cfg.GuildID, st, registry)
	if err != nil {
		log.Fatal().Err(err).Msg("create bot")
	}
	if err := b.Start(); err != nil {
		log.Fatal().Err(err).Msg("connect to Discord")
	}

	if cfg.GuildID != "" {
		log.Info().Str("guild", cfg.GuildID).Msg("dev mode, commands scoped to guild")
	}
	log.Info().Msg("bot is running, press CTRL+C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	if watcher != nil {
		watcher.Stop()
	}
	b.Close()
}
