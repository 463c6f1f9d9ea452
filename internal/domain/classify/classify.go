// Package classify maps raw row labels onto the normalized sport taxonomy,
// the two modeled seasons and display metadata. Every function is total:
// lookup misses fall back instead of failing.
package classify

import (
	"strings"

	"github.com/okian/podium/internal/domain/model"
)

// Fallback glyphs.
const (
	neutralFlag = "\U0001F3F3\uFE0F" // white flag
	medalEmoji  = "\U0001F3C5"       // sports medal

	regionalIndicatorA = 0x1F1E6
)

const (
	summerSuffix = " Summer Olympics"
	winterSuffix = " Winter Olympics"
)

type country struct {
	name   string
	region string // ISO 3166 alpha-2, empty for historical teams
}

// NormalizeSport returns the sport a discipline label is reported under.
// Unknown labels pass through unchanged.
func NormalizeSport(discipline string) string {
	if sport, ok := disciplineToSport[discipline]; ok {
		return sport
	}
	return discipline
}

// DetectSeason classifies a Games label. Youth, intercalated and other
// special Games yield model.SeasonNone and must be skipped by the caller.
func DetectSeason(games string) model.Season {
	switch {
	case strings.HasSuffix(games, summerSuffix):
		return model.SeasonSummer
	case strings.HasSuffix(games, winterSuffix):
		return model.SeasonWinter
	default:
		return model.SeasonNone
	}
}

// SportEmoji returns the pictogram for sport, or a medal for unknown sports.
func SportEmoji(sport string) string {
	if e, ok := sportEmoji[sport]; ok {
		return e
	}
	return medalEmoji
}

// CountryName returns the display name of noc, or noc itself when unknown.
func CountryName(noc string) string {
	if c, ok := countries[noc]; ok {
		return c.name
	}
	return noc
}

// Flag resolves the flag glyph for noc. Overrides win, then the flag built
// from the region code; anything else gets the neutral flag.
func Flag(noc string) string {
	if f, ok := flagOverrides[noc]; ok {
		return f
	}
	if c, ok := countries[noc]; ok && c.region != "" {
		if f, ok := regionFlag(c.region); ok {
			return f
		}
	}
	return neutralFlag
}

// NeutralFlag is the glyph used when no flag can be resolved.
func NeutralFlag() string { return neutralFlag }

// FallbackEmoji is the glyph used for sports without a pictogram.
func FallbackEmoji() string { return medalEmoji }

// regionFlag composes two regional indicator symbols from a two-letter code.
func regionFlag(code string) (string, bool) {
	code = strings.ToUpper(code)
	if len(code) != 2 {
		return "", false
	}
	var b strings.Builder
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return "", false
		}
		b.WriteRune(rune(regionalIndicatorA + int(c-'A')))
	}
	return b.String(), true
}
