package mercy

// TierRule describes the mercy ramp for one rarity tier on one shard type.
// Below Threshold summons the bonus is 0; from Threshold on it rises by
// StepPct per summon.
type TierRule struct {
	Threshold int     // summon count at which mercy activates
	StepPct   float64 // bonus percent added per summon once active
	BasePct   float64 // base drop rate, used only by the estimator
}

// Chance returns the mercy bonus percentage for a summon count.
// At count == Threshold the first step already applies; capped at 100.
func (t TierRule) Chance(count int) float64 {
	if count < t.Threshold || t.Threshold <= 0 {
		return 0
	}
	pct := t.StepPct * float64(count-t.Threshold+1)
	if pct > 100 {
		return 100
	}
	return pct
}

// Rule is the full mercy rule for a shard type. Legendary is always set;
// Mythical only for shard types that can drop mythicals.
type Rule struct {
	Legendary TierRule
	Mythical  *TierRule
}

// RuleSet maps every shard type to its rule.
type RuleSet map[ShardType]Rule

// TierProgress reports how far a summon count is along one tier's ramp.
type TierProgress struct {
	Rarity    Rarity
	Count     int
	Threshold int
	Remaining int     // summons left until mercy activates; 0 when active
	Fill      float64 // progress toward threshold in [0,1]
	Active    bool
	BonusPct  float64 // current mercy bonus; 0 unless active
}

// Progress evaluates every applicable tier of a rule at the given count.
// Tiers come back in rarity order, legendary first.
func (r Rule) Progress(count int) []TierProgress {
	out := []TierProgress{tierProgress(Legendary, r.Legendary, count)}
	if r.Mythical != nil {
		out = append(out, tierProgress(Mythical, *r.Mythical, count))
	}
	return out
}

func tierProgress(rarity Rarity, t TierRule, count int) TierProgress {
	p := TierProgress{
		Rarity:    rarity,
		Count:     count,
		Threshold: t.Threshold,
	}
	if t.Threshold <= 0 {
		return p
	}
	if count >= t.Threshold {
		p.Active = true
		p.Fill = 1
		p.BonusPct = t.Chance(count)
		return p
	}
	p.Remaining = t.Threshold - count
	p.Fill = float64(count) / float64(t.Threshold)
	return p
}
