package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/HellscythePT/discord-mercy-tracker/internal/rules"
	"github.com/HellscythePT/discord-mercy-tracker/internal/store"
)

// Bot owns the Discord session and wires slash commands to the mercy
// calculator and the counter store.
type Bot struct {
	session *discordgo.Session
	store   *store.Store
	rules   *rules.Registry
	guildID string // empty registers commands globally
}

// New creates the bot and its Discord session.
func New(token, guildID string, st *store.Store, reg *rules.Registry) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.ShouldRetryOnRateLimit = true
	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session: session,
		store:   st,
		rules:   reg,
		guildID: guildID,
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteractionCreate)
	return b, nil
}

// Start opens the gateway connection.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	return nil
}

// Close shuts the gateway connection down.
func (b *Bot) Close() {
	if err := b.session.Close(); err != nil {
		log.Warn().Err(err).Msg("closing session")
	}
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Info().
		Str("user", event.User.Username).
		Str("id", event.User.ID).
		Msg("logged in")

	if err := s.UpdateGameStatus(0, "tracking mercy"); err != nil {
		log.Warn().Err(err).Msg("update status")
	}
	if err := b.registerCommands(s); err != nil {
		log.Error().Err(err).Msg("register slash commands")
	}
}

// interactionUser resolves the invoking user for guild and DM interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		switch name {
		case "open":
			b.handleOpen(s, i)
		case "status":
			b.handleStatus(s, i)
		case "odds":
			b.handleOdds(s, i)
		case "rules":
			b.handleRules(s, i)
		case "help":
			b.handleHelp(s, i)
		case "reset":
			b.handleReset(s, i)
		default:
			log.Warn().Str("command", name).Msg("unknown command")
		}
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}

// respond sends an initial interaction response with a single embed.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Error().Err(err).Msg("interaction respond")
	}
}

// respondError reports a validation or internal error to the user only.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "❌ " + msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("interaction respond")
	}
}
