package mercy

import (
	"math"
	"sort"
)

// Estimate summarizes simulated summons-until-hit for one tier.
type Estimate struct {
	Mean float64
	P50  float64
	P90  float64
}

// maxSummonsPerTrial bounds a single trial so a rule with a zero base rate
// and a slow ramp cannot loop unreasonably long.
const maxSummonsPerTrial = 100000

// hitProb is the per-summon drop probability at a given count: the base
// rate plus the mercy bonus, as a fraction of 1.
func (t TierRule) hitProb(count int) float64 {
	p := (t.BasePct + t.Chance(count)) / 100
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// EstimateToHit runs a Monte Carlo estimate of how many further summons are
// needed until the tier drops, starting from the current summon count.
// A nil rng falls back to the crypto-backed source.
func EstimateToHit(t TierRule, current int, trials int, rng RandomSource) Estimate {
	if trials <= 0 {
		return Estimate{}
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	if current < 0 {
		current = 0
	}

	samples := make([]int, trials)
	for i := 0; i < trials; i++ {
		samples[i] = trialToHit(t, current, rng)
	}
	return summarize(samples)
}

// trialToHit simulates one run of summoning until the tier hits.
func trialToHit(t TierRule, current int, rng RandomSource) int {
	count := current
	for draws := 1; draws <= maxSummonsPerTrial; draws++ {
		count++
		p := t.hitProb(count)
		if p >= 1 {
			return draws
		}
		if p > 0 && rng.Float64() < p {
			return draws
		}
	}
	return maxSummonsPerTrial
}

// summarize computes mean and interpolated percentiles over the samples.
func summarize(xs []int) Estimate {
	n := len(xs)
	if n == 0 {
		return Estimate{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	cp := append([]int(nil), xs...)
	sort.Ints(cp)

	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Estimate{
		Mean: sum / float64(n),
		P50:  percentile(0.50),
		P90:  percentile(0.90),
	}
}
