package config

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds everything the bot reads from the environment.
type Config struct {
	// Token is the Discord bot token used for authentication.
	Token string

	// GuildID scopes slash-command registration to one guild for
	// development; empty registers commands globally.
	GuildID string

	// DataFile is the JSON snapshot path; its backup lives alongside.
	DataFile string

	// RulesFile is an optional YAML overrides file for the mercy rules.
	RulesFile string

	// LogLevel is a zerolog level name.
	LogLevel string
}

// Load reads configuration from the process environment, with a .env file
// as optional fallback.
func Load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	// .env is optional, but a present-yet-broken one should not pass silently
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not parse .env file, using environment only")
	}

	viper.SetDefault("DATA_FILE", "data/mercy.json")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Token:     viper.GetString("DISCORD_TOKEN"),
		GuildID:   viper.GetString("DISCORD_GUILD_ID"),
		DataFile:  viper.GetString("DATA_FILE"),
		RulesFile: viper.GetString("RULES_FILE"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
	}
	if cfg.Token == "" {
		return nil, errors.New("DISCORD_TOKEN not set as env variable or in .env")
	}
	return cfg, nil
}
