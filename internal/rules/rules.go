package rules

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/HellscythePT/discord-mercy-tracker/internal/mercy"
)

// Raw config loaded from the optional overrides YAML.
type RawConfig struct {
	Version string              `yaml:"version,omitempty"`
	Shards  map[string]RawShard `yaml:"shards"`
	Notes   string              `yaml:"notes,omitempty"`
}

type RawShard struct {
	Legendary *RawTier `yaml:"legendary,omitempty"`
	Mythical  *RawTier `yaml:"mythical,omitempty"`
}

type RawTier struct {
	Threshold *int     `yaml:"threshold,omitempty"`
	StepPct   *float64 `yaml:"step_pct,omitempty"`
	BasePct   *float64 `yaml:"base_pct,omitempty"`
}

// Defaults returns the built-in mercy rule table.
func Defaults() mercy.RuleSet {
	return mercy.RuleSet{
		mercy.Ancient: {Legendary: mercy.TierRule{Threshold: 200, StepPct: 5, BasePct: 0.5}},
		mercy.Void:    {Legendary: mercy.TierRule{Threshold: 200, StepPct: 5, BasePct: 0.5}},
		mercy.Sacred:  {Legendary: mercy.TierRule{Threshold: 12, StepPct: 2, BasePct: 6}},
		mercy.Primal: {
			Legendary: mercy.TierRule{Threshold: 75, StepPct: 1, BasePct: 1},
			Mythical:  &mercy.TierRule{Threshold: 200, StepPct: 10, BasePct: 0.5},
		},
		mercy.Remnant: {
			Legendary: mercy.TierRule{Threshold: 200, StepPct: 5, BasePct: 0.5},
			Mythical:  &mercy.TierRule{Threshold: 24, StepPct: 1, BasePct: 0.5},
		},
	}
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	for name, shard := range cfg.Shards {
		st, err := mercy.ParseShard(name)
		if err != nil {
			errs = append(errs, fmt.Sprintf("shards.%s: unknown shard type", name))
			continue
		}
		checkTier := func(rarity string, t *RawTier) {
			if t == nil {
				return
			}
			if t.Threshold != nil && *t.Threshold < 1 {
				errs = append(errs, fmt.Sprintf("shards.%s.%s.threshold must be >= 1", st, rarity))
			}
			if t.StepPct != nil && (*t.StepPct <= 0 || *t.StepPct > 100) {
				errs = append(errs, fmt.Sprintf("shards.%s.%s.step_pct must be in (0,100]", st, rarity))
			}
			if t.BasePct != nil && (*t.BasePct < 0 || *t.BasePct > 100) {
				errs = append(errs, fmt.Sprintf("shards.%s.%s.base_pct must be in [0,100]", st, rarity))
			}
		}
		checkTier("legendary", shard.Legendary)
		checkTier("mythical", shard.Mythical)

		// mythical tiers only exist where the defaults define one
		if shard.Mythical != nil && Defaults()[st].Mythical == nil {
			errs = append(errs, fmt.Sprintf("shards.%s has no mythical tier", st))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rules validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// mergeTier overlays non-nil raw fields onto a tier rule.
func mergeTier(base mercy.TierRule, raw *RawTier) mercy.TierRule {
	if raw == nil {
		return base
	}
	if raw.Threshold != nil {
		base.Threshold = *raw.Threshold
	}
	if raw.StepPct != nil {
		base.StepPct = *raw.StepPct
	}
	if raw.BasePct != nil {
		base.BasePct = *raw.BasePct
	}
	return base
}

// merge overlays a validated RawConfig onto the defaults.
func merge(base mercy.RuleSet, cfg RawConfig) mercy.RuleSet {
	out := make(mercy.RuleSet, len(base))
	for st, rule := range base {
		raw, ok := cfg.Shards[string(st)]
		if !ok {
			out[st] = rule
			continue
		}
		rule.Legendary = mergeTier(rule.Legendary, raw.Legendary)
		if rule.Mythical != nil {
			m := mergeTier(*rule.Mythical, raw.Mythical)
			rule.Mythical = &m
		}
		out[st] = rule
	}
	return out
}

// Registry holds the active rule set and reloads it from the overrides file.
// Reads and the watcher's reload run on different goroutines.
type Registry struct {
	path string // overrides file; empty means defaults only

	mu  sync.RWMutex
	set mercy.RuleSet
}

// NewRegistry creates a registry seeded with the defaults. path may be empty.
func NewRegistry(path string) *Registry {
	return &Registry{path: path, set: Defaults()}
}

// Load reads and validates the overrides file and swaps the active set.
// With no path configured it resets to the defaults.
func (r *Registry) Load() error {
	set := Defaults()
	if r.path != "" {
		cfg, err := readYAML(r.path)
		if err != nil {
			return fmt.Errorf("read rules %s: %w", r.path, err)
		}
		if err := ValidateRaw(cfg); err != nil {
			return err
		}
		set = merge(set, cfg)
	}
	r.mu.Lock()
	r.set = set
	r.mu.Unlock()
	return nil
}

// Rule returns the active rule for a shard type.
func (r *Registry) Rule(st mercy.ShardType) (mercy.Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.set[st]
	return rule, ok
}

// Rules returns a copy of the active rule set.
func (r *Registry) Rules() mercy.RuleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(mercy.RuleSet, len(r.set))
	for st, rule := range r.set {
		out[st] = rule
	}
	return out
}
