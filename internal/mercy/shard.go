package mercy

import (
	"errors"
	"strings"
)

var ErrUnknownShard = errors.New("unknown shard type")

// ShardType identifies one summoning resource. The set is closed; commands
// carry it as a choice, so Parse only sees free-form input from config files.
type ShardType string

const (
	Ancient ShardType = "ancient"
	Void    ShardType = "void"
	Sacred  ShardType = "sacred"
	Primal  ShardType = "primal"
	Remnant ShardType = "remnant"
)

// AllShards lists every shard type in display order.
func AllShards() []ShardType {
	return []ShardType{Ancient, Void, Sacred, Primal, Remnant}
}

// ParseShard maps a case-insensitive name to its ShardType.
func ParseShard(s string) (ShardType, error) {
	switch ShardType(strings.ToLower(strings.TrimSpace(s))) {
	case Ancient:
		return Ancient, nil
	case Void:
		return Void, nil
	case Sacred:
		return Sacred, nil
	case Primal:
		return Primal, nil
	case Remnant:
		return Remnant, nil
	}
	return "", ErrUnknownShard
}

func (s ShardType) String() string { return string(s) }

// Title returns the shard name capitalized for display.
func (s ShardType) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Rarity is a reward tier with its own mercy rule.
type Rarity string

const (
	Legendary Rarity = "legendary"
	Mythical  Rarity = "mythical"
)

func (r Rarity) String() string { return string(r) }

func (r Rarity) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}
