package bot

import (
	"strings"
	"testing"

	"github.com/HellscythePT/discord-mercy-tracker/internal/mercy"
	"github.com/HellscythePT/discord-mercy-tracker/internal/rules"
)

func TestProgressBar(t *testing.T) {
	if got := progressBar(0, 10); got != "▱▱▱▱▱▱▱▱▱▱" {
		t.Fatalf("empty bar wrong: %q", got)
	}
	if got := progressBar(1, 10); got != "▰▰▰▰▰▰▰▰▰▰" {
		t.Fatalf("full bar wrong: %q", got)
	}
	if got := progressBar(0.5, 10); got != "▰▰▰▰▰▱▱▱▱▱" {
		t.Fatalf("half bar wrong: %q", got)
	}
	// out-of-range fills clamp
	if got := progressBar(1.7, 4); got != "▰▰▰▰" {
		t.Fatalf("overfull bar should clamp: %q", got)
	}
	if got := progressBar(-0.3, 4); got != "▱▱▱▱" {
		t.Fatalf("negative fill should clamp: %q", got)
	}
}

func TestTierLine(t *testing.T) {
	rule := mercy.Rule{Legendary: mercy.TierRule{Threshold: 12, StepPct: 2}}

	inactive := tierLine(rule.Progress(10)[0])
	if !strings.Contains(inactive, "2 to mercy") || !strings.Contains(inactive, "(10/12)") {
		t.Fatalf("inactive line wrong: %q", inactive)
	}

	active := tierLine(rule.Progress(20)[0])
	if !strings.Contains(active, "MERCY ACTIVE") || !strings.Contains(active, "+18% chance") {
		t.Fatalf("active line wrong: %q", active)
	}
}

func TestStatusDescription(t *testing.T) {
	set := rules.Defaults()

	t.Run("no data", func(t *testing.T) {
		got := statusDescription(nil, set)
		if !strings.Contains(got, "/open") {
			t.Fatalf("empty status should point at /open: %q", got)
		}
	})

	t.Run("tracked shards", func(t *testing.T) {
		counts := map[mercy.ShardType]int{
			mercy.Sacred: 20,
			mercy.Primal: 80,
		}
		got := statusDescription(counts, set)
		if !strings.Contains(got, "**Sacred Shards** (20 total)") {
			t.Fatalf("missing sacred section: %q", got)
		}
		if !strings.Contains(got, "**Primal Shards** (80 total)") {
			t.Fatalf("missing primal section: %q", got)
		}
		// primal shows both tiers: legendary is active at 80, mythical is not
		if !strings.Contains(got, "Legendary: **MERCY ACTIVE** (+6% chance)") {
			t.Fatalf("primal legendary line wrong: %q", got)
		}
		if !strings.Contains(got, "Mythical: 120 to mercy") {
			t.Fatalf("primal mythical line wrong: %q", got)
		}
		// untracked shards stay out of the report
		if strings.Contains(got, "Void") {
			t.Fatalf("untracked shard should not appear: %q", got)
		}
	})
}

func TestRulesDescription(t *testing.T) {
	got := rulesDescription(rules.Defaults())
	for _, want := range []string{
		"**Ancient Shards:**",
		"└ Legendary: Mercy at 200 summons (+5% per summon after)",
		"└ Legendary: Mercy at 12 summons (+2% per summon after)",
		"└ Mythical: Mercy at 24 summons (+1% per summon after)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("rules text missing %q:\n%s", want, got)
		}
	}
}

func TestHelpText(t *testing.T) {
	t.Run("command list", func(t *testing.T) {
		got := helpCommandList()
		for _, cmd := range []string{"/open", "/status", "/odds", "/rules", "/reset", "/help"} {
			if !strings.Contains(got, "`"+cmd) {
				t.Fatalf("help should list %s:\n%s", cmd, got)
			}
		}
	})

	t.Run("shard table", func(t *testing.T) {
		got := helpShardList(rules.Defaults())
		for _, want := range []string{
			"**Ancient** - Legendary mercy at 200 summons",
			"**Sacred** - Legendary mercy at 12 summons",
			"**Primal** - Legendary mercy at 75 summons, Mythical at 200",
			"**Remnant** - Legendary mercy at 200 summons, Mythical at 24",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("shard table missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("tips", func(t *testing.T) {
		got := helpTips()
		if !strings.Contains(got, "500 shards") {
			t.Fatalf("tips should state the per-command limit:\n%s", got)
		}
	})
}

func TestResetConfirmEmbed(t *testing.T) {
	all := resetConfirmEmbed("everything", true)
	single := resetConfirmEmbed("one shard", false)
	if all.Color != colorDanger {
		t.Fatalf("reset-all confirmation should be red, got %#x", all.Color)
	}
	if single.Color != colorConfirm {
		t.Fatalf("single-shard confirmation should be orange, got %#x", single.Color)
	}
	if all.Title != single.Title {
		t.Fatalf("confirmation titles should match: %q vs %q", all.Title, single.Title)
	}
}

func TestPctFormatting(t *testing.T) {
	cases := map[float64]string{
		18:   "18",
		0.5:  "0.5",
		2.4:  "2.4",
		100:  "100",
		6.25: "6.25",
	}
	for in, want := range cases {
		if got := pct(in); got != want {
			t.Fatalf("pct(%v) = %q, want %q", in, got, want)
		}
	}
}
