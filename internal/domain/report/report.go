// Package report turns a finished tally into the per-country summary
// document consumed by the display layer.
package report

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"

	"github.com/okian/podium/internal/domain/classify"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/tally"
)

// TopSports is the number of sports kept per season.
const TopSports = 5

// SportMedals is one ranked sport line of a season.
type SportMedals struct {
	Sport  string `json:"sport"`
	Emoji  string `json:"emoji"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
}

// Total returns gold+silver+bronze.
func (s SportMedals) Total() int {
	return s.Gold + s.Silver + s.Bronze
}

// CountrySummary is the report entry of one NOC.
type CountrySummary struct {
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	Flag        string        `json:"flag"`
	TotalMedals int           `json:"totalMedals"`
	Summer      []SportMedals `json:"summer"`
	Winter      []SportMedals `json:"winter"`
}

// Document holds country summaries in ascending NOC order. It marshals to
// a JSON object keyed by NOC that keeps that order.
type Document struct {
	countries []CountrySummary
}

// Countries returns the summaries in NOC order.
func (d *Document) Countries() []CountrySummary {
	out := make([]CountrySummary, len(d.countries))
	copy(out, d.countries)
	return out
}

// Len returns the number of countries.
func (d *Document) Len() int {
	return len(d.countries)
}

// Get returns the summary of code.
func (d *Document) Get(code string) (CountrySummary, bool) {
	i, ok := slices.BinarySearchFunc(d.countries, code, func(c CountrySummary, code string) int {
		return cmp.Compare(c.Code, code)
	})
	if !ok {
		return CountrySummary{}, false
	}
	return d.countries[i], true
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, c := range d.countries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(c.Code); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(c); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Build produces the document for t. Every country in t appears exactly
// once. Seasons keep their TopSports best sports while TotalMedals counts
// all of them.
func Build(t *tally.Tally) *Document {
	nocs := t.NOCs()
	doc := &Document{countries: make([]CountrySummary, 0, len(nocs))}
	for _, noc := range nocs {
		ct, _ := t.Country(noc)
		doc.countries = append(doc.countries, summarize(ct))
	}
	return doc
}

func summarize(ct *tally.CountryTally) CountrySummary {
	return CountrySummary{
		Name:        classify.CountryName(ct.NOC),
		Code:        ct.NOC,
		Flag:        classify.Flag(ct.NOC),
		TotalMedals: ct.Total(),
		Summer:      topSports(ct.Season(model.SeasonSummer)),
		Winter:      topSports(ct.Season(model.SeasonWinter)),
	}
}

// topSports ranks a season by medal total. Ties keep first-contribution
// order. The result is never nil.
func topSports(s *tally.SeasonTally) []SportMedals {
	sports := s.Sports()
	lines := make([]SportMedals, 0, len(sports))
	for _, sport := range sports {
		c := s.Counts(sport)
		lines = append(lines, SportMedals{
			Sport:  sport,
			Emoji:  classify.SportEmoji(sport),
			Gold:   c.Gold,
			Silver: c.Silver,
			Bronze: c.Bronze,
		})
	}
	slices.SortStableFunc(lines, func(a, b SportMedals) int {
		return cmp.Compare(b.Total(), a.Total())
	})
	if len(lines) > TopSports {
		lines = lines[:TopSports:TopSports]
	}
	return lines
}
