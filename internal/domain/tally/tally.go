// Package tally builds the per-country medal tally from result rows.
//
// A Tally is written by exactly one Aggregator pass and is read-only
// afterwards. Sports keep their first-contribution order so that ranking
// ties can be broken stably.
package tally

import (
	"sort"

	"github.com/okian/podium/internal/domain/model"
)

// Counts holds medals per tier for one sport.
type Counts struct {
	Gold   int
	Silver int
	Bronze int
}

// Total returns gold+silver+bronze.
func (c Counts) Total() int {
	return c.Gold + c.Silver + c.Bronze
}

func (c *Counts) add(t model.Tier) {
	switch t {
	case model.TierGold:
		c.Gold++
	case model.TierSilver:
		c.Silver++
	case model.TierBronze:
		c.Bronze++
	}
}

// SeasonTally holds sport counts for one country and season.
type SeasonTally struct {
	order  []string
	counts map[string]*Counts
}

func newSeasonTally() *SeasonTally {
	return &SeasonTally{counts: make(map[string]*Counts)}
}

// Sports returns sport names in first-contribution order.
func (s *SeasonTally) Sports() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Counts returns the counts for sport; zero when the sport has no medals.
func (s *SeasonTally) Counts(sport string) Counts {
	if c, ok := s.counts[sport]; ok {
		return *c
	}
	return Counts{}
}

// Len returns the number of sports with at least one medal.
func (s *SeasonTally) Len() int {
	return len(s.order)
}

// Total sums every sport in the season.
func (s *SeasonTally) Total() int {
	total := 0
	for _, c := range s.counts {
		total += c.Total()
	}
	return total
}

func (s *SeasonTally) add(sport string, t model.Tier) {
	c, ok := s.counts[sport]
	if !ok {
		c = &Counts{}
		s.counts[sport] = c
		s.order = append(s.order, sport)
	}
	c.add(t)
}

// CountryTally owns both season tallies of one country.
type CountryTally struct {
	NOC    string
	summer *SeasonTally
	winter *SeasonTally
}

// Season returns the tally for s. SeasonNone yields an empty tally.
func (c *CountryTally) Season(s model.Season) *SeasonTally {
	switch s {
	case model.SeasonSummer:
		return c.summer
	case model.SeasonWinter:
		return c.winter
	default:
		return newSeasonTally()
	}
}

// Total sums every sport in both seasons.
func (c *CountryTally) Total() int {
	total := 0
	for _, s := range model.Seasons {
		total += c.Season(s).Total()
	}
	return total
}

// Tally maps NOC codes to country tallies.
type Tally struct {
	countries map[string]*CountryTally
}

// New returns an empty tally.
func New() *Tally {
	return &Tally{countries: make(map[string]*CountryTally)}
}

// Add credits one medal. Tiers other than gold, silver and bronze and
// SeasonNone are ignored.
func (t *Tally) Add(noc string, season model.Season, sport string, tier model.Tier) {
	if !tier.Valid() || season == model.SeasonNone {
		return
	}
	c, ok := t.countries[noc]
	if !ok {
		c = &CountryTally{NOC: noc, summer: newSeasonTally(), winter: newSeasonTally()}
		t.countries[noc] = c
	}
	c.Season(season).add(sport, tier)
}

// Country returns the tally of noc.
func (t *Tally) Country(noc string) (*CountryTally, bool) {
	c, ok := t.countries[noc]
	return c, ok
}

// NOCs returns every country code in ascending order.
func (t *Tally) NOCs() []string {
	out := make([]string, 0, len(t.countries))
	for noc := range t.countries {
		out = append(out, noc)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of countries with at least one medal.
func (t *Tally) Len() int {
	return len(t.countries)
}

// Medals returns the total number of medals credited.
func (t *Tally) Medals() int {
	total := 0
	for _, c := range t.countries {
		total += c.Total()
	}
	return total
}
