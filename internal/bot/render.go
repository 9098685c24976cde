package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/HellscythePT/discord-mercy-tracker/internal/mercy"
)

// Embed colors, matching the original bot's palette.
const (
	colorSuccess = 0x00ff00
	colorWarning = 0xffa500
	colorInfo    = 0x0099ff
	colorDanger  = 0xff0000
	colorConfirm = 0xff6600
	colorRules   = 0x9932cc
	colorNeutral = 0x808080
	colorHelp    = 0x00ff99
)

const (
	progressBarWidth   = 10
	progressFilledChar = "▰"
	progressEmptyChar  = "▱"
)

func shardEmoji(st mercy.ShardType) string {
	switch st {
	case mercy.Ancient:
		return "🔵"
	case mercy.Void:
		return "🟣"
	case mercy.Sacred:
		return "🟡"
	case mercy.Primal:
		return "🔴"
	case mercy.Remnant:
		return "⚫"
	}
	return "🔘"
}

// progressBar renders fill in [0,1] as a fixed-width glyph bar.
func progressBar(fill float64, width int) string {
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}
	filled := int(float64(width) * fill)
	return strings.Repeat(progressFilledChar, filled) + strings.Repeat(progressEmptyChar, width-filled)
}

// pct formats a percentage without trailing zeros (18, 0.5, 2.4).
func pct(v float64) string {
	return fmt.Sprintf("%g", v)
}

// tierLine renders one rarity tier of a shard's progress.
func tierLine(tp mercy.TierProgress) string {
	if tp.Active {
		return fmt.Sprintf("└ %s: **MERCY ACTIVE** (+%s%% chance)", tp.Rarity.Title(), pct(tp.BonusPct))
	}
	return fmt.Sprintf("└ %s: %d to mercy %s %d%% (%d/%d)",
		tp.Rarity.Title(), tp.Remaining,
		progressBar(tp.Fill, progressBarWidth),
		int(tp.Fill*100), tp.Count, tp.Threshold)
}

// statusDescription builds the /status report over a user's counters.
func statusDescription(counts map[mercy.ShardType]int, set mercy.RuleSet) string {
	var lines []string
	for _, st := range mercy.AllShards() {
		count, tracked := counts[st]
		if !tracked {
			continue
		}
		rule, ok := set[st]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("\n%s **%s Shards** (%d total)", shardEmoji(st), st.Title(), count))
		for _, tp := range rule.Progress(count) {
			lines = append(lines, tierLine(tp))
		}
	}
	if len(lines) == 0 {
		return "No mercy data tracked yet. Use `/open` to start tracking!"
	}
	return strings.Join(lines, "\n")
}

// rulesDescription renders the active rule table for /rules.
func rulesDescription(set mercy.RuleSet) string {
	var lines []string
	for _, st := range mercy.AllShards() {
		rule, ok := set[st]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("\n%s **%s Shards:**", shardEmoji(st), st.Title()))
		lines = append(lines, fmt.Sprintf("└ Legendary: Mercy at %d summons (+%s%% per summon after)",
			rule.Legendary.Threshold, pct(rule.Legendary.StepPct)))
		if rule.Mythical != nil {
			lines = append(lines, fmt.Sprintf("└ Mythical: Mercy at %d summons (+%s%% per summon after)",
				rule.Mythical.Threshold, pct(rule.Mythical.StepPct)))
		}
	}
	return strings.Join(lines, "\n")
}

// resetConfirmEmbed builds the reset confirmation prompt; wiping all data
// gets the red treatment, a single shard the softer orange.
func resetConfirmEmbed(desc string, all bool) *discordgo.MessageEmbed {
	color := colorConfirm
	if all {
		color = colorDanger
	}
	return &discordgo.MessageEmbed{
		Title:       "⚠️ Confirm Reset",
		Description: desc,
		Color:       color,
	}
}

// helpCommandList enumerates every slash command for /help.
func helpCommandList() string {
	return strings.Join([]string{
		"**`/open <shard> <amount>`** - Log opened shards",
		"**`/status`** - View your mercy progress",
		"**`/odds <shard>`** - Estimate summons left until mercy pays out",
		"**`/rules`** - View mercy system rules",
		"**`/reset [shard]`** - Reset data (all or a specific shard type)",
		"**`/help`** - Show this help message",
	}, "\n")
}

// helpShardList summarizes each shard's thresholds from the active rules.
func helpShardList(set mercy.RuleSet) string {
	var lines []string
	for _, st := range mercy.AllShards() {
		rule, ok := set[st]
		if !ok {
			continue
		}
		line := fmt.Sprintf("**%s** - Legendary mercy at %d summons", st.Title(), rule.Legendary.Threshold)
		if rule.Mythical != nil {
			line += fmt.Sprintf(", Mythical at %d", rule.Mythical.Threshold)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func helpTips() string {
	return strings.Join([]string{
		"• Your data is automatically saved and backed up",
		"• Use `/rules` to see detailed mercy thresholds",
		fmt.Sprintf("• Up to %d shards can be logged per command", maxAmount),
		"• Use `/reset sacred` to reset only Sacred shards",
		"• Use `/reset` (no shard type) to reset all data",
		"• Your counters are private to you",
	}, "\n")
}

// oddsLine renders one tier's summon estimate.
func oddsLine(rarity mercy.Rarity, count int, est mercy.Estimate) string {
	return fmt.Sprintf("└ %s: ~**%.0f** more summons (median %.0f, 90%% within %.0f) at %d opened",
		rarity.Title(), est.Mean, est.P50, est.P90, count)
}
