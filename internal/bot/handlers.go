package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/HellscythePT/discord-mercy-tracker/internal/mercy"
)

// trials per tier for the /odds estimator; keeps responses well under the
// interaction deadline.
const oddsTrials = 2000

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (b *Bot) handleOpen(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	opts := optionMap(i)

	shardOpt, ok := opts["shard"]
	if !ok {
		respondError(s, i, "Missing shard type.")
		return
	}
	st, err := mercy.ParseShard(shardOpt.StringValue())
	if err != nil {
		respondError(s, i, "Unknown shard type.")
		return
	}

	amountOpt, ok := opts["amount"]
	if !ok {
		respondError(s, i, "Missing amount.")
		return
	}
	amount := int(amountOpt.IntValue())
	if amount < minAmount || amount > maxAmount {
		respondError(s, i, fmt.Sprintf("Invalid amount. Must be between %d and %d.", minAmount, maxAmount))
		return
	}

	count, err := b.store.Add(user.ID, st, amount)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID).Msg("saving mercy data")
		respondError(s, i, "Your summons were recorded but saving to disk failed.")
		return
	}
	log.Info().Str("user", user.ID).Str("shard", st.String()).Int("amount", amount).Int("total", count).Msg("shards opened")

	embed := &discordgo.MessageEmbed{
		Title:       "✅ Shard Update Complete",
		Description: fmt.Sprintf("%s %s: +%d (Total: %d)", shardEmoji(st), st.Title(), amount, count),
		Color:       colorSuccess,
		Footer:      &discordgo.MessageEmbedFooter{Text: "User: " + user.Username},
	}
	respond(s, i, embed, true)
}

func (b *Bot) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	counts := b.store.Counts(user.ID)

	if len(counts) == 0 {
		respond(s, i, &discordgo.MessageEmbed{
			Title:       "📊 Mercy Tracker Status",
			Description: "No data found. Use `/open` to start tracking your summons!",
			Color:       colorWarning,
		}, false)
		return
	}

	respond(s, i, &discordgo.MessageEmbed{
		Title:       "📊 Mercy Tracker Status",
		Description: statusDescription(counts, b.rules.Rules()),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: "User: " + user.Username},
	}, false)
}

func (b *Bot) handleOdds(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	opts := optionMap(i)

	shardOpt, ok := opts["shard"]
	if !ok {
		respondError(s, i, "Missing shard type.")
		return
	}
	st, err := mercy.ParseShard(shardOpt.StringValue())
	if err != nil {
		respondError(s, i, "Unknown shard type.")
		return
	}
	rule, ok := b.rules.Rule(st)
	if !ok {
		respondError(s, i, "No mercy rule for that shard type.")
		return
	}

	count := b.store.Get(user.ID, st)
	lines := []string{
		oddsLine(mercy.Legendary, count, mercy.EstimateToHit(rule.Legendary, count, oddsTrials, nil)),
	}
	if rule.Mythical != nil {
		lines = append(lines, oddsLine(mercy.Mythical, count, mercy.EstimateToHit(*rule.Mythical, count, oddsTrials, nil)))
	}

	respond(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 Summon Odds — %s %s", shardEmoji(st), st.Title()),
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Simulated from your current counter"},
	}, true)
}

func (b *Bot) handleRules(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "🎯 Mercy System Rules",
		Description: "Here are the mercy thresholds for each shard type:",
		Color:       colorRules,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "How it works",
				Value: "• Mercy activates after a certain number of summons without the target rarity\n" +
					"• Once active, your chance increases with each additional summon\n" +
					"• Reset the counter when you pull the target rarity",
			},
			{
				Name:  "Thresholds",
				Value: rulesDescription(b.rules.Rules()),
			},
		},
	}
	respond(s, i, embed, false)
}

func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := &discordgo.MessageEmbed{
		Title:       "🤖 Mercy Tracker Bot Help",
		Description: "Track your summon mercy progress with ease!",
		Color:       colorHelp,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📋 Commands", Value: helpCommandList()},
			{Name: "🔮 Supported Shard Types", Value: helpShardList(b.rules.Rules())},
			{Name: "💡 Tips", Value: helpTips()},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Happy summoning! 🌟"},
	}
	respond(s, i, embed, false)
}

func (b *Bot) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if !b.store.HasData(user.ID) {
		respondError(s, i, "You have no data to reset.")
		return
	}

	target := "all"
	desc := "This will reset **all** your shard counters.\n**This cannot be undone.**"
	if opt, ok := optionMap(i)["shard"]; ok {
		st, err := mercy.ParseShard(opt.StringValue())
		if err != nil {
			respondError(s, i, "Unknown shard type.")
			return
		}
		target = string(st)
		current := b.store.Get(user.ID, st)
		desc = fmt.Sprintf("Reset **%s** data?\nCurrent: **%d**", st.Title(), current)
	}

	embed := resetConfirmEmbed(desc, target == "all")
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "✅ Confirm Reset",
							Style:    discordgo.DangerButton,
							CustomID: "reset_confirm:" + user.ID + ":" + target,
						},
						discordgo.Button{
							Label:    "❌ Cancel",
							Style:    discordgo.SecondaryButton,
							CustomID: "reset_cancel:" + user.ID,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("interaction respond")
	}
}

func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) < 2 {
		return
	}
	action, owner := parts[0], parts[1]

	if user.ID != owner {
		respondError(s, i, "This is not your reset request.")
		return
	}

	switch action {
	case "reset_confirm":
		if len(parts) != 3 {
			return
		}
		if err := b.doReset(user.ID, parts[2]); err != nil {
			log.Error().Err(err).Str("user", user.ID).Msg("reset")
			respondError(s, i, "Reset failed. Try again.")
			return
		}
		log.Info().Str("user", user.ID).Str("target", parts[2]).Msg("counters reset")
		updateWithEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "✅ Data Reset",
			Description: "Selected mercy tracker data has been reset.",
			Color:       colorSuccess,
		})
	case "reset_cancel":
		updateWithEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "❌ Reset Cancelled",
			Description: "Your data remains unchanged.",
			Color:       colorNeutral,
		})
	}
}

// doReset applies a confirmed reset; target is a shard name or "all".
func (b *Bot) doReset(userID, target string) error {
	if target == "all" {
		return b.store.ResetAll(userID)
	}
	st, err := mercy.ParseShard(target)
	if err != nil {
		return err
	}
	return b.store.Reset(userID, st)
}

// updateWithEmbed replaces the confirmation message, dropping its buttons.
func updateWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("interaction update")
	}
}
