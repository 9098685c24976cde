package mercy

import "testing"

func TestChanceBelowThreshold(t *testing.T) {
	rule := TierRule{Threshold: 12, StepPct: 2}
	for count := 0; count < 12; count++ {
		if got := rule.Chance(count); got != 0 {
			t.Fatalf("count=%d below threshold should be 0%%, got %v", count, got)
		}
	}
}

func TestChanceScenarios(t *testing.T) {
	sacred := TierRule{Threshold: 12, StepPct: 2}
	if got := sacred.Chance(12); got != 2 {
		t.Fatalf("sacred at 12 should be 2%%, got %v", got)
	}
	if got := sacred.Chance(20); got != 18 {
		t.Fatalf("sacred at 20 should be 18%%, got %v", got)
	}

	primalLeg := TierRule{Threshold: 75, StepPct: 1}
	if got := primalLeg.Chance(75); got != 1 {
		t.Fatalf("primal legendary at 75 should be 1%%, got %v", got)
	}
	primalMyth := TierRule{Threshold: 200, StepPct: 10}
	if got := primalMyth.Chance(200); got != 10 {
		t.Fatalf("primal mythical at 200 should be 10%%, got %v", got)
	}
}

func TestChanceCapAndMonotonic(t *testing.T) {
	rule := TierRule{Threshold: 10, StepPct: 7}
	prev := 0.0
	for count := 0; count < 200; count++ {
		got := rule.Chance(count)
		if got < prev {
			t.Fatalf("chance decreased at count=%d: %v -> %v", count, prev, got)
		}
		if got > 100 {
			t.Fatalf("chance exceeded cap at count=%d: %v", count, got)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("chance should cap at 100, ended at %v", prev)
	}
}

func TestProgress(t *testing.T) {
	myth := TierRule{Threshold: 24, StepPct: 1}
	rule := Rule{
		Legendary: TierRule{Threshold: 200, StepPct: 5},
		Mythical:  &myth,
	}

	t.Run("before threshold", func(t *testing.T) {
		tiers := rule.Progress(50)
		if len(tiers) != 2 {
			t.Fatalf("expected legendary and mythical tiers, got %d", len(tiers))
		}
		leg := tiers[0]
		if leg.Rarity != Legendary || leg.Active {
			t.Fatalf("legendary should be inactive at 50: %+v", leg)
		}
		if leg.Remaining != 150 {
			t.Fatalf("legendary remaining should be 150, got %d", leg.Remaining)
		}
		if leg.Fill != 0.25 {
			t.Fatalf("legendary fill should be 0.25, got %v", leg.Fill)
		}
	})

	t.Run("past threshold", func(t *testing.T) {
		tiers := rule.Progress(50)
		m := tiers[1]
		if m.Rarity != Mythical || !m.Active {
			t.Fatalf("mythical should be active at 50: %+v", m)
		}
		if m.Remaining != 0 || m.Fill != 1 {
			t.Fatalf("active tier should be full: %+v", m)
		}
		if m.BonusPct != 27 {
			t.Fatalf("mythical bonus at 50 should be 27%%, got %v", m.BonusPct)
		}
	})

	t.Run("legendary only", func(t *testing.T) {
		single := Rule{Legendary: TierRule{Threshold: 12, StepPct: 2}}
		tiers := single.Progress(5)
		if len(tiers) != 1 {
			t.Fatalf("expected single tier, got %d", len(tiers))
		}
	})
}

func TestParseShard(t *testing.T) {
	for _, st := range AllShards() {
		got, err := ParseShard(st.String())
		if err != nil || got != st {
			t.Fatalf("round-trip parse of %q failed: got=%v err=%v", st, got, err)
		}
	}
	if got, err := ParseShard("  SACRED "); err != nil || got != Sacred {
		t.Fatalf("parse should be case-insensitive: got=%v err=%v", got, err)
	}
	if _, err := ParseShard("mystery"); err == nil {
		t.Fatal("unknown shard must error")
	}
}
