// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Tier is the medal tier of a result row.
type Tier int

// Medal tiers. TierNone covers rows without a medal; TierUnknown covers a
// present but unrecognized value.
const (
	TierNone Tier = iota
	TierGold
	TierSilver
	TierBronze
	TierUnknown
)

// ParseTier maps the raw Medal column to a Tier. Matching is exact on the
// canonical spelling used by the dataset.
func ParseTier(s string) Tier {
	switch s {
	case "Gold":
		return TierGold
	case "Silver":
		return TierSilver
	case "Bronze":
		return TierBronze
	case "", "NA", "None", "No medal":
		return TierNone
	default:
		return TierUnknown
	}
}

// Valid reports whether t is one of the three medal tiers.
func (t Tier) Valid() bool {
	return t == TierGold || t == TierSilver || t == TierBronze
}

func (t Tier) String() string {
	switch t {
	case TierGold:
		return "gold"
	case TierSilver:
		return "silver"
	case TierBronze:
		return "bronze"
	case TierUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// Season is one of the two modeled Games partitions.
type Season int

// Seasons. SeasonNone marks youth, intercalated and other special Games.
const (
	SeasonNone Season = iota
	SeasonSummer
	SeasonWinter
)

// Seasons lists the modeled seasons in output order.
var Seasons = [...]Season{SeasonSummer, SeasonWinter}

func (s Season) String() string {
	switch s {
	case SeasonSummer:
		return "summer"
	case SeasonWinter:
		return "winter"
	default:
		return "none"
	}
}

// RawRecord is one input row: one athlete's result in one event.
type RawRecord struct {
	Medal      string // raw medal column, e.g. "Gold" or ""
	NOC        string // national olympic committee code, e.g. "USA"
	Games      string // e.g. "2020 Summer Olympics"
	Event      string // e.g. "Football, Men"
	Discipline string // possibly compound, e.g. "Swimming (Aquatics)"
}

// Validate checks that the fields needed for tallying are present.
func (r RawRecord) Validate() error {
	var missing []string
	if r.NOC == "" {
		missing = append(missing, "NOC")
	}
	if r.Games == "" {
		missing = append(missing, "Games")
	}
	if r.Event == "" {
		missing = append(missing, "Event")
	}
	if r.Discipline == "" {
		missing = append(missing, "Discipline")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformedRecord, strings.Join(missing, ", "))
	}
	return nil
}

// DedupKey identifies one team-level medal. Rows for every athlete of a
// team share the same key.
type DedupKey struct {
	Games string
	Event string
	NOC   string
	Tier  Tier
}

// Key returns the dedup key of r for tier t.
func (r RawRecord) Key(t Tier) DedupKey {
	return DedupKey{Games: r.Games, Event: r.Event, NOC: r.NOC, Tier: t}
}

func (k DedupKey) String() string {
	return k.Games + "|" + k.Event + "|" + k.NOC + "|" + k.Tier.String()
}
