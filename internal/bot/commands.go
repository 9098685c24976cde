package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/HellscythePT/discord-mercy-tracker/internal/mercy"
)

// Summon amounts accepted by /open in one invocation.
const (
	minAmount = 1
	maxAmount = 500
)

func shardChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(mercy.AllShards()))
	for _, st := range mercy.AllShards() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  st.Title(),
			Value: string(st),
		})
	}
	return choices
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	minOne := float64(minAmount)
	return []*discordgo.ApplicationCommand{
		{
			Name:        "open",
			Description: "Log opened shards toward your mercy counter",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "shard",
					Description: "Shard type you opened",
					Required:    true,
					Choices:     shardChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: fmt.Sprintf("How many shards you opened (%d-%d)", minAmount, maxAmount),
					Required:    true,
					MinValue:    &minOne,
					MaxValue:    maxAmount,
				},
			},
		},
		{
			Name:        "status",
			Description: "Check your current mercy progress",
		},
		{
			Name:        "odds",
			Description: "Estimate how many more summons you need",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "shard",
					Description: "Shard type to estimate",
					Required:    true,
					Choices:     shardChoices(),
				},
			},
		},
		{
			Name:        "rules",
			Description: "View the mercy thresholds for each shard type",
		},
		{
			Name:        "help",
			Description: "Show detailed help for all commands",
		},
		{
			Name:        "reset",
			Description: "Reset your mercy counter after a pull",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "shard",
					Description: "Shard type to reset; omit to reset everything",
					Required:    false,
					Choices:     shardChoices(),
				},
			},
		},
	}
}

func (b *Bot) registerCommands(s *discordgo.Session) error {
	defs := commandDefinitions()
	for _, cmd := range defs {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, b.guildID, cmd); err != nil {
			return fmt.Errorf("create command %s: %w", cmd.Name, err)
		}
	}
	log.Info().Int("count", len(defs)).Str("guild", b.guildID).Msg("slash commands registered")
	return nil
}
